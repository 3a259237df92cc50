package seeder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"career-guide/internal/database"
	"career-guide/internal/database/dbtest"
	"career-guide/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tableColumns = map[string][]string{
	"skills":             {"name", "position", "created_at"},
	"career_paths":       {"name", "position", "salary_range", "growth_rate", "education", "created_at"},
	"career_skills":      {"career_name", "skill", "position"},
	"learning_resources": {"id", "skill", "position", "title", "url", "type"},
}

func schemaDB() *dbtest.FakeDB {
	return &dbtest.FakeDB{
		OnQuery: func(query string, args []any) ([][]any, error) {
			if !strings.Contains(query, "information_schema.columns") {
				return nil, nil
			}
			var out [][]any
			for _, table := range args[0].([]string) {
				for _, c := range tableColumns[table] {
					out = append(out, []any{table, c})
				}
			}
			return out, nil
		},
	}
}

func TestEnsureSchema(t *testing.T) {
	db := schemaDB()
	ctx := context.Background()

	assert.NoError(t, EnsureSchema(ctx, db, MarketDataSeeder{}.Tables()...))
	assert.NoError(t, EnsureSchema(ctx, db))

	err := EnsureSchema(ctx, db,
		Table{Name: "skills", Columns: []string{"name", "category"}},
		Table{Name: "jobs", Columns: []string{"title"}},
	)
	assert.ErrorIs(t, err, errSchemaMismatch)
	assert.ErrorContains(t, err, "missing jobs.title, skills.category")

	assert.Error(t, EnsureSchema(ctx, db, Table{Columns: []string{"name"}}))
	assert.Error(t, EnsureSchema(ctx, nil, Table{Name: "skills"}))
}

func TestMarketDataSeeder_InsertsInOrder(t *testing.T) {
	db := schemaDB()
	md := catalog.DefaultMarketData()

	require.NoError(t, MarketDataSeeder{Data: md}.Run(context.Background(), db))

	skills := db.ExecsContaining("INSERT INTO skills")
	require.Len(t, skills, len(md.RequiredSkills))
	assert.Equal(t, []any{"Python", 0}, skills[0].Args)

	careers := db.ExecsContaining("INSERT INTO career_paths")
	require.Len(t, careers, 3)
	assert.Equal(t, "Data Scientist", careers[0].Args[0])
	assert.Equal(t, "AI Engineer", careers[2].Args[0])

	assert.Len(t, db.ExecsContaining("INSERT INTO career_skills"), 12)
	assert.Equal(t, 1, db.Commits)
}

func TestMarketDataSeeder_RejectsInvalidData(t *testing.T) {
	db := schemaDB()
	err := MarketDataSeeder{}.Run(context.Background(), db)
	assert.Error(t, err)
	assert.Empty(t, db.Execs)
}

func TestResourcesSeeder(t *testing.T) {
	db := schemaDB()
	require.NoError(t, ResourcesSeeder{Resources: catalog.DefaultResources()}.Run(context.Background(), db))

	rows := db.ExecsContaining("INSERT INTO learning_resources")
	assert.Len(t, rows, 8)
	assert.Equal(t, "Data Analysis", rows[0].Args[0])
	assert.Equal(t, 1, db.Commits)
}

type failingSeeder struct{}

func (failingSeeder) Name() string { return "broken" }

func (failingSeeder) Tables() []Table { return nil }

func (failingSeeder) Run(context.Context, database.DB) error { return errors.New("boom") }

func TestRunner_WrapsSeederName(t *testing.T) {
	err := Runner{Seeders: []Seeder{nil, failingSeeder{}}}.Run(context.Background(), schemaDB())
	assert.ErrorContains(t, err, "seed broken: boom")

	assert.Error(t, Runner{}.Run(context.Background(), nil))
	assert.Len(t, Defaults(catalog.Default()), 2)
}

func TestRunner_ChecksSchemaBeforeWriting(t *testing.T) {
	db := &dbtest.FakeDB{}

	err := Runner{Seeders: Defaults(catalog.Default())}.Run(context.Background(), db)
	assert.ErrorIs(t, err, errSchemaMismatch)
	assert.ErrorContains(t, err, "run migrations first")
	assert.Empty(t, db.Execs)
}

func TestRunner_SeedsDefaults(t *testing.T) {
	db := schemaDB()

	require.NoError(t, Runner{Seeders: Defaults(catalog.Default())}.Run(context.Background(), db))
	assert.Equal(t, 2, db.Commits)
	assert.Len(t, db.Queries, 1)
}
