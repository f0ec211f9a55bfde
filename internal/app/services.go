package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/attention-backend/internal/adapter/postgres"
	"github.com/heartmarshall/attention-backend/internal/adapter/postgres/bill"
	"github.com/heartmarshall/attention-backend/internal/adapter/postgres/message"
	"github.com/heartmarshall/attention-backend/internal/adapter/postgres/pin"
	"github.com/heartmarshall/attention-backend/internal/adapter/postgres/pinnote"
	"github.com/heartmarshall/attention-backend/internal/adapter/postgres/ticket"
	"github.com/heartmarshall/attention-backend/internal/classifier"
	"github.com/heartmarshall/attention-backend/internal/config"
	"github.com/heartmarshall/attention-backend/internal/service/attention"
	pinsvc "github.com/heartmarshall/attention-backend/internal/service/pin"
)

// Services holds the application services sharing one connection pool.
type Services struct {
	Attention *attention.Service
	Pins      *pinsvc.Service
}

// NewServices wires repositories, the message classifier and the services.
// Sync metrics are registered on reg when it is non-nil.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config, reg prometheus.Registerer) (*Services, error) {
	units, err := classifier.NewUnitExtractor(cfg.Units.Primary, cfg.Units.Secondary)
	if err != nil {
		return nil, fmt.Errorf("unit extractor: %w", err)
	}
	pipeline := classifier.NewPipeline(nil, units, classifier.WithResultCache(cfg.Sync.ClassificationCacheTTL))

	pins := pin.New(pool)
	bills := bill.New(pool)
	tickets := ticket.New(pool)
	messages := message.New(pool)

	var metrics *attention.Metrics
	if reg != nil {
		metrics = attention.NewMetrics(reg)
	}

	return &Services{
		Attention: attention.NewService(logger, pins, bills, tickets, messages, pipeline, metrics, cfg.Sync),
		Pins: pinsvc.NewService(logger, pins, pinnote.New(pool), bills, tickets, messages, pipeline,
			postgres.NewTxManager(pool), cfg.Notes, cfg.Dashboard),
	}, nil
}
