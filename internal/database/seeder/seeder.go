package seeder

import (
	"context"

	"career-guide/internal/database"
)

// Seeder replaces the contents of the tables it owns. Tables lists them so
// the runner can check the schema before anything is written.
type Seeder interface {
	Name() string
	Tables() []Table
	Run(ctx context.Context, db database.DB) error
}
