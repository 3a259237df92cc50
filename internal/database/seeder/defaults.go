package seeder

import "career-guide/internal/domain/catalog"

func Defaults(cat catalog.Catalog) []Seeder {
	return []Seeder{
		MarketDataSeeder{Data: cat.Market},
		ResourcesSeeder{Resources: cat.Resources},
	}
}
