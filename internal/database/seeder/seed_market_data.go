package seeder

import (
	"context"

	"career-guide/internal/database"
	"career-guide/internal/domain/catalog"
)

// MarketDataSeeder upserts the skill catalog and career definitions. Rows
// missing from Data are removed so the tables mirror it exactly.
type MarketDataSeeder struct {
	Data catalog.MarketData
}

func (MarketDataSeeder) Name() string { return "market_data" }

func (MarketDataSeeder) Tables() []Table {
	return []Table{
		{Name: "skills", Columns: []string{"name", "position"}},
		{Name: "career_paths", Columns: []string{"name", "position", "salary_range", "growth_rate", "education"}},
		{Name: "career_skills", Columns: []string{"career_name", "skill", "position"}},
	}
}

func (s MarketDataSeeder) Run(ctx context.Context, db database.DB) error {
	if err := s.Data.Validate(); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM career_skills`); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM career_paths`); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM skills`); err != nil {
			return err
		}

		for i, name := range s.Data.RequiredSkills {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skills (name, position) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
				name,
				i,
			); err != nil {
				return err
			}
		}

		for i, c := range s.Data.CareerPaths {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO career_paths (name, position, salary_range, growth_rate, education) VALUES ($1, $2, $3, $4, $5)`,
				c.Name,
				i,
				c.SalaryRange,
				c.GrowthRate,
				c.Education,
			); err != nil {
				return err
			}
			for j, skill := range c.RequiredSkills {
				if _, err := tx.Exec(
					ctx,
					`INSERT INTO career_skills (career_name, skill, position) VALUES ($1, $2, $3) ON CONFLICT (career_name, skill) DO NOTHING`,
					c.Name,
					skill,
					j,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
