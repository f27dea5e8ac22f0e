package seeder

import (
	"context"

	"resume-builder/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
