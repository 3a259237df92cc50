package marketdata

import (
	"context"

	"career-guide/internal/domain/catalog"
)

// Source supplies the catalog once at startup.
type Source interface {
	Name() string
	Load(ctx context.Context) (catalog.Catalog, error)
}
