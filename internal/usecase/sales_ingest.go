package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"SolarAPI/internal/domain/models"
	"SolarAPI/internal/domain/repository"
	applogger "SolarAPI/pkg/logger"
)

// SalesIngestHandler consumes sales batches from the bus and stores them.
// Messages are JSON arrays of sales records; a single bare record is also
// accepted.
type SalesIngestHandler struct {
	logger  *applogger.Logger
	topic   string
	store   repository.SalesStore
	metrics repository.Metrics
}

func NewSalesIngestHandler(logger *applogger.Logger, topic string, store repository.SalesStore, metrics repository.Metrics) *SalesIngestHandler {
	return &SalesIngestHandler{logger: logger, topic: topic, store: store, metrics: metrics}
}

func (h *SalesIngestHandler) Topic() string {
	return h.topic
}

func (h *SalesIngestHandler) Handle(ctx context.Context, data []byte) error {
	var batch []models.SalesRecord
	if err := json.Unmarshal(data, &batch); err != nil {
		var single models.SalesRecord
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("decode sales message: %w", err)
		}
		batch = []models.SalesRecord{single}
	}

	if len(batch) == 0 {
		return nil
	}

	if err := h.store.StoreBatch(ctx, batch); err != nil {
		return fmt.Errorf("store sales batch: %w", err)
	}

	h.metrics.RecordIngested(len(batch))
	h.logger.Debug("sales batch ingested", applogger.Int("count", len(batch)))
	return nil
}
