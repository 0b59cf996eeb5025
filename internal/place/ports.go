package place

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=place

// Repository defines the contract for place data storage.
type Repository interface {
	Find(ctx context.Context, f Filter, p Page) ([]Place, error)
	Count(ctx context.Context, f Filter) (int, error)
	Get(ctx context.Context, id string) (Place, error)
	Create(ctx context.Context, p *Place) error
	Update(ctx context.Context, id string, patch Patch, updatedAt time.Time) (Place, error)
	Delete(ctx context.Context, id string) error
}
