// Package store is the data access layer over the food_delivery_db schema. It performs
// input validation before writes, wraps multi-row writes in transactions and classifies
// constraint failures into the sentinel errors in errors.go.
package store

import (
	"context"
	"fmt"

	"food-delivery-db/database"
	"food-delivery-db/metrics"
	"food-delivery-db/notify"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Store reads and writes the eight tables through one gorm handle.
type Store struct {
	db           *gorm.DB
	log          logrus.FieldLogger
	validate     *validator.Validate
	notifier     notify.Publisher
	passwordCost int
}

// Option configures a Store at construction.
type Option func(*Store)

// WithNotifier publishes a notification whenever an order changes status.
func WithNotifier(p notify.Publisher) Option {
	return func(s *Store) { s.notifier = p }
}

// New returns a Store over db. Without WithNotifier, status changes are not published.
func New(db *gorm.DB, log logrus.FieldLogger, opts ...Option) *Store {
	s := &Store{
		db:       db,
		log:      log,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DB exposes the underlying handle for callers that need raw access, such as migrations.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Counts returns per-table row counts and refreshes the row gauge.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts, err := database.Counts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	metrics.ObserveCounts(counts)
	return counts, nil
}

func (s *Store) deleteByID(ctx context.Context, model interface{}, id uint, kind string) error {
	res := s.db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", kind, id, classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s %d: %w", kind, id, ErrNotFound)
	}
	s.log.WithField(kind+"_id", id).Info(kind + " deleted")
	return nil
}
