package marketdata

import (
	"context"
	"fmt"
	"log"

	"career-guide/internal/database"
	"career-guide/internal/domain/catalog"
)

// PostgresSource loads the catalog from the tables the seeder fills.
type PostgresSource struct {
	db     database.DB
	logger *log.Logger
}

func NewPostgresSource(db database.DB, logger *log.Logger) *PostgresSource {
	if logger == nil {
		logger = log.Default()
	}
	return &PostgresSource{db: db, logger: logger}
}

func (s *PostgresSource) Name() string { return "postgres" }

func (s *PostgresSource) Load(ctx context.Context) (catalog.Catalog, error) {
	if s == nil || s.db == nil {
		return catalog.Catalog{}, fmt.Errorf("nil db")
	}

	skills, err := s.loadSkills(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load skills: %w", err)
	}
	careers, err := s.loadCareers(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load career paths: %w", err)
	}
	resources, err := s.loadResources(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load learning resources: %w", err)
	}

	md := catalog.MarketData{RequiredSkills: skills, CareerPaths: careers}
	if err := md.Validate(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("%w (run careerctl seed)", err)
	}

	s.logger.Printf("market data status=loaded source=postgres skills=%d careers=%d resources=%d",
		len(skills), len(careers), len(resources))
	return catalog.Catalog{Market: md, Resources: resources}, nil
}

func (s *PostgresSource) loadSkills(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT name FROM skills ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (s *PostgresSource) loadCareers(ctx context.Context) (catalog.CareerPaths, error) {
	rows, err := s.db.Query(ctx, `SELECT name, salary_range, growth_rate, education FROM career_paths ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	var out catalog.CareerPaths
	index := map[string]int{}
	for rows.Next() {
		var c catalog.CareerDefinition
		if err := rows.Scan(&c.Name, &c.SalaryRange, &c.GrowthRate, &c.Education); err != nil {
			rows.Close()
			return nil, err
		}
		c.RequiredSkills = []string{}
		index[c.Name] = len(out)
		out = append(out, c)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}

	srows, err := s.db.Query(ctx, `SELECT career_name, skill FROM career_skills ORDER BY career_name, position`)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		var career, skill string
		if err := srows.Scan(&career, &skill); err != nil {
			return nil, err
		}
		i, ok := index[career]
		if !ok {
			continue
		}
		out[i].RequiredSkills = append(out[i].RequiredSkills, skill)
	}
	return out, srows.Err()
}

func (s *PostgresSource) loadResources(ctx context.Context) (catalog.Resources, error) {
	rows, err := s.db.Query(ctx, `SELECT skill, title, url, type FROM learning_resources ORDER BY skill, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := catalog.Resources{}
	for rows.Next() {
		var skill string
		var r catalog.Resource
		if err := rows.Scan(&skill, &r.Title, &r.URL, &r.Type); err != nil {
			return nil, err
		}
		out[skill] = append(out[skill], r)
	}
	return out, rows.Err()
}
