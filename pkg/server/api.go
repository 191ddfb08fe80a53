package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sondeo/sondeo/pkg/collectors"
	"github.com/sondeo/sondeo/pkg/models"
	"github.com/sondeo/sondeo/pkg/probe"
)

var APIVersion = "1.0"

// InternalErrorMessage is the fixed body returned for any failure inside
// the stats or probe handlers. Internals are logged, never surfaced.
const InternalErrorMessage = "Error interno del servidor"

// MaxBodySize limits request bodies on API routes.
var MaxBodySize int64 = 1 << 20

type API struct {
	Gin      *gin.Engine
	Config   *models.Configuration
	Registry *collectors.Registry
	Prober   *probe.Prober

	metrics *metrics
}

func NewAPI(config *models.Configuration, registry *collectors.Registry, prober *probe.Prober) *API {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(cors())
	router.Use(maxBodySize())
	router.Use(jsonLogs())

	a := &API{
		Gin:      router,
		Config:   config,
		Registry: registry,
		Prober:   prober,
		metrics:  newMetrics(),
	}
	router.Use(a.metrics.requestCounter())

	router.GET("/metrics", gin.WrapH(a.metrics.handler()))

	public := router.Group("/sondeo")
	public.GET("/", func(c *gin.Context) {
		respond(c, models.NewEnvelope(models.MetadataResponse{
			Sondeo:     true,
			APIVersion: APIVersion,
		}))
	})

	auth := public.Group("/1.0", StaticToken(config))
	auth.GET("/stats", a.stats)
	auth.POST("/probe", a.probe)

	return a
}

func (a *API) stats(c *gin.Context) {
	start := time.Now()
	stats, err := a.Registry.Collect(c)
	a.metrics.collectDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("stats handler failed")
		respond(c, models.NewEnvelope(models.ErrorResponse{
			Error: InternalErrorMessage,
		}).WithStatus(http.StatusInternalServerError))
		return
	}
	respond(c, models.NewEnvelope(stats))
}

func (a *API) probe(c *gin.Context) {
	var body models.ProbeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond(c, models.NewEnvelope(models.ErrorResponse{
			Error: "invalid JSON request body: " + err.Error(),
		}).WithStatus(http.StatusBadRequest))
		return
	}

	result, err := a.Prober.Check(c, body)
	if err != nil {
		respond(c, models.NewEnvelope(models.ErrorResponse{
			Error: err.Error(),
		}).WithStatus(http.StatusBadRequest))
		return
	}
	respond(c, models.NewEnvelope(result))
}

// respond renders an envelope through gin so every handler shares the
// same headers and serialization rules.
func respond(c *gin.Context, e *models.Envelope) {
	for k, v := range e.Headers() {
		c.Header(k, v)
	}
	c.Data(e.Status, "application/json", e.Body())
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
		}
	}
}

func maxBodySize() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)
	}
}

func jsonLogs() gin.HandlerFunc {
	return gin.LoggerWithFormatter(
		func(params gin.LogFormatterParams) string {
			line := log.Info().
				Any("request_id", params.Keys["request_id"]).
				Int("status", params.StatusCode).
				Str("method", params.Method).
				Str("path", params.Path).
				Str("client_ip", params.ClientIP).
				Dur("response_time", params.Latency)

			if reason, ok := params.Keys["reason"].(string); ok {
				line = line.Str("reason", reason)
			}

			line.Send()
			return ""
		},
	)
}

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := uuid.New().String()
		ctx.Set("request_id", rid)
		ctx.Header("X-Request-ID", rid)
	}
}
