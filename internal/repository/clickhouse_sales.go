package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"SolarAPI/internal/domain/models"
	pkgch "SolarAPI/pkg/clickhouse"
	applogger "SolarAPI/pkg/logger"
)

// CHSalesStore persists ingested sales line items in ClickHouse.
type CHSalesStore struct {
	db *sql.DB
	l  *applogger.Logger
}

func NewCHSalesStore(ch *pkgch.Client, l *applogger.Logger) *CHSalesStore {
	return &CHSalesStore{db: ch.DB(), l: l}
}

func (s *CHSalesStore) StoreBatch(ctx context.Context, items []models.SalesRecord) error {
	if len(items) == 0 {
		return nil
	}

	// Multi-row VALUES inserts, chunked to bound statement size.
	const chunkSize = 2000
	now := time.Now().UTC()
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*6)
		for _, item := range items[start:end] {
			if item.Product == "" {
				continue
			}
			values = append(values, "(?, ?, ?, ?, ?, ?)")
			args = append(args,
				uuid.NewString(),
				item.Date,
				item.Product,
				int32(item.Quantity),
				item.Price,
				now,
			)
		}
		if len(values) == 0 {
			continue
		}

		q := fmt.Sprintf("INSERT INTO sales_items (id, sale_date, product, quantity, price, ingested_at) VALUES %s",
			strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			s.l.Error("clickhouse sales insert error",
				applogger.Int("rows", len(values)),
				applogger.Error(err),
			)
			return fmt.Errorf("store sales batch: %w", err)
		}
	}
	return nil
}
