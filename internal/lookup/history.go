package lookup

import (
	"context"
	"fmt"

	"go-lexicon/internal/definition"

	"gorm.io/gorm"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 200
)

// History persists lookup metadata with gorm.
type History struct {
	db *gorm.DB
}

func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// Observe stores one row per finished lookup.
func (h *History) Observe(ctx context.Context, o definition.Outcome) error {
	rec := FromOutcome(o)
	if err := h.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("save lookup: %w", err)
	}
	return nil
}

// Recent returns the latest lookups, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Lookup, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	var out []Lookup
	err := h.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list lookups: %w", err)
	}
	return out, nil
}
