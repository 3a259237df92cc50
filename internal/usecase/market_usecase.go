package usecase

import (
	"context"

	"career-guide/internal/domain/catalog"
)

type MarketUsecase interface {
	GetResources(ctx context.Context, skill string) ([]catalog.Resource, error)
	GetMarketData(ctx context.Context) catalog.MarketData
	ListSkills(ctx context.Context) []string
	ListCareers(ctx context.Context) catalog.CareerPaths
}

type Market struct {
	catalog catalog.Catalog
}

func NewMarketUsecase(cat catalog.Catalog) *Market {
	return &Market{catalog: cat}
}

// GetResources looks the skill up by exact name, as stored in the catalog.
func (u *Market) GetResources(_ context.Context, skill string) ([]catalog.Resource, error) {
	list, ok := u.catalog.Resources[skill]
	if !ok || len(list) == 0 {
		return nil, ErrResourcesNotFound
	}
	out := make([]catalog.Resource, len(list))
	copy(out, list)
	return out, nil
}

func (u *Market) GetMarketData(_ context.Context) catalog.MarketData {
	return catalog.MarketData{
		RequiredSkills: u.ListSkills(context.Background()),
		CareerPaths:    u.ListCareers(context.Background()),
	}
}

func (u *Market) ListSkills(_ context.Context) []string {
	out := make([]string, len(u.catalog.Market.RequiredSkills))
	copy(out, u.catalog.Market.RequiredSkills)
	return out
}

func (u *Market) ListCareers(_ context.Context) catalog.CareerPaths {
	out := make(catalog.CareerPaths, 0, len(u.catalog.Market.CareerPaths))
	for _, c := range u.catalog.Market.CareerPaths {
		c.RequiredSkills = append(make([]string, 0, len(c.RequiredSkills)), c.RequiredSkills...)
		out = append(out, c)
	}
	return out
}
