package seeder

import (
	"context"
	"sort"

	"career-guide/internal/database"
	"career-guide/internal/domain/catalog"
)

type ResourcesSeeder struct {
	Resources catalog.Resources
}

func (ResourcesSeeder) Name() string { return "learning_resources" }

func (ResourcesSeeder) Tables() []Table {
	return []Table{{Name: "learning_resources", Columns: []string{"skill", "position", "title", "url", "type"}}}
}

func (s ResourcesSeeder) Run(ctx context.Context, db database.DB) error {
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM learning_resources`); err != nil {
			return err
		}

		skills := make([]string, 0, len(s.Resources))
		for skill := range s.Resources {
			skills = append(skills, skill)
		}
		sort.Strings(skills)

		for _, skill := range skills {
			for i, r := range s.Resources[skill] {
				if _, err := tx.Exec(
					ctx,
					`INSERT INTO learning_resources (skill, position, title, url, type) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (skill, url) DO NOTHING`,
					skill,
					i,
					r.Title,
					r.URL,
					r.Type,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
