// Package collectors produces structured summaries of system state on
// demand. Each collector contributes one named section to the stats
// response.
package collectors

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sondeo/sondeo/pkg/models"
)

type Collector interface {
	Collect(ctx context.Context) (map[string]any, error)
}

// Registry holds named collectors and aggregates their output. A failure
// in any collector aborts the whole collection; the handler boundary
// decides what to surface.
type Registry struct {
	names      []string
	collectors map[string]Collector
}

func NewRegistry() *Registry {
	return &Registry{
		collectors: map[string]Collector{},
	}
}

func (r *Registry) Add(name string, collector Collector) {
	if _, ok := r.collectors[name]; !ok {
		r.names = append(r.names, name)
	}
	r.collectors[name] = collector
}

func (r *Registry) Collect(ctx context.Context) (models.StatsResponse, error) {
	stats := models.StatsResponse{}
	for _, name := range r.names {
		section, err := r.collectors[name].Collect(ctx)
		if err != nil {
			log.Error().Err(err).Str("collector", name).Msg("stats collection failed")
			return nil, fmt.Errorf("collector %s: %w", name, err)
		}
		stats[name] = section
	}
	return stats, nil
}
