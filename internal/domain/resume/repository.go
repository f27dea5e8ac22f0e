package resume

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resume not found")

type Repository interface {
	Create(ctx context.Context, r Resume) (Resume, error)
	Update(ctx context.Context, r Resume) (Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
