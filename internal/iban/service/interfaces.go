package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks ResultCache

import (
	"context"

	"ibanguard/internal/iban/models"
)

// ResultCache stores decompositions of valid IBANs keyed by normalized value.
// Find returns sentinel.ErrNotFound on a miss.
type ResultCache interface {
	Find(ctx context.Context, key string) (*models.Details, error)
	Save(ctx context.Context, key string, details *models.Details) error
}
