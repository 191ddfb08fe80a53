package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sondeo/sondeo/pkg/models"
)

const (
	ReasonMissingToken = "invalid:token:missing"
	ReasonWrongScheme  = "invalid:token:scheme"
	ReasonWrongToken   = "invalid:token"
)

// StaticToken guards API routes with the configured bearer token. An
// empty configured token leaves the routes open.
func StaticToken(config *models.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.Token == "" {
			return
		}

		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			authError(c, "Authorization header is empty", ReasonMissingToken)
			return
		}

		scheme, token, _ := strings.Cut(authorization, " ")
		if scheme != "Bearer" {
			authError(c, "Authorization header scheme must be Bearer", ReasonWrongScheme)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(config.Token)) != 1 {
			authError(c, "invalid token", ReasonWrongToken)
			return
		}
	}
}

func authError(c *gin.Context, err string, reason string) {
	c.Set("reason", reason)
	respond(c, models.NewEnvelope(models.ErrorResponse{
		Error:  err,
		Reason: reason,
	}).WithStatus(http.StatusUnauthorized))
	c.Abort()
}
