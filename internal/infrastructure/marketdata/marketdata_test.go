package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"career-guide/internal/database/dbtest"
	"career-guide/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = log.New(io.Discard, "", 0)

func TestJSONSource_WritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "job_market_data.json")

	cat, err := NewJSONSource(path, quiet).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultMarketData(), cat.Market)
	assert.NotEmpty(t, cat.Resources["Python"])

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "{\n  \"required_skills\": ["))
	assert.Less(t, strings.Index(string(b), "Data Scientist"), strings.Index(string(b), "AI Engineer"))
}

func TestJSONSource_ReadsExistingFileInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.json")
	raw := `{
  "required_skills": ["Go", "Rust"],
  "career_paths": {
    "Systems Engineer": {"required_skills": ["Rust"], "salary_range": "x", "growth_rate": "High", "education": "BSc"},
    "Backend Engineer": {"required_skills": ["Go"], "salary_range": "y", "growth_rate": "Medium", "education": "BSc"}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cat, err := NewJSONSource(path, quiet).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, cat.Market.RequiredSkills)
	require.Len(t, cat.Market.CareerPaths, 2)
	assert.Equal(t, "Systems Engineer", cat.Market.CareerPaths[0].Name)
	assert.Equal(t, "Backend Engineer", cat.Market.CareerPaths[1].Name)
}

func TestJSONSource_RejectsBadFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err := NewJSONSource(bad, quiet).Load(context.Background())
	assert.ErrorContains(t, err, "decode market data")

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"required_skills": [], "career_paths": {}}`), 0o644))
	_, err = NewJSONSource(empty, quiet).Load(context.Background())
	assert.ErrorContains(t, err, "required_skills is empty")
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	md := catalog.DefaultMarketData()
	require.NoError(t, WriteJSON(path, md))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var got catalog.MarketData
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, md, got)
	assert.Contains(t, string(b), "Bachelor's")
}

func catalogDB() *dbtest.FakeDB {
	return &dbtest.FakeDB{
		OnQuery: func(query string, _ []any) ([][]any, error) {
			switch {
			case strings.Contains(query, "FROM skills"):
				return [][]any{{"Python"}, {"SQL"}}, nil
			case strings.Contains(query, "FROM career_paths"):
				return [][]any{
					{"Data Scientist", "$1", "High", "MSc"},
					{"Analyst", "$2", "Medium", "BSc"},
				}, nil
			case strings.Contains(query, "FROM career_skills"):
				return [][]any{
					{"Analyst", "SQL"},
					{"Data Scientist", "Python"},
					{"Data Scientist", "SQL"},
					{"Ghost", "Cobol"},
				}, nil
			case strings.Contains(query, "FROM learning_resources"):
				return [][]any{
					{"Python", "Py 1", "https://a", "course"},
					{"Python", "Py 2", "https://b", "tutorial"},
				}, nil
			}
			return nil, nil
		},
	}
}

func TestPostgresSource_Load(t *testing.T) {
	cat, err := NewPostgresSource(catalogDB(), quiet).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL"}, cat.Market.RequiredSkills)
	require.Len(t, cat.Market.CareerPaths, 2)
	assert.Equal(t, "Data Scientist", cat.Market.CareerPaths[0].Name)
	assert.Equal(t, []string{"Python", "SQL"}, cat.Market.CareerPaths[0].RequiredSkills)
	assert.Equal(t, []string{"SQL"}, cat.Market.CareerPaths[1].RequiredSkills)
	assert.Equal(t, "Py 1", cat.Resources["Python"][0].Title)
	assert.Len(t, cat.Resources["Python"], 2)
}

func TestPostgresSource_EmptyTables(t *testing.T) {
	_, err := NewPostgresSource(&dbtest.FakeDB{}, quiet).Load(context.Background())
	assert.ErrorContains(t, err, "careerctl seed")
}

func TestPostgresSource_QueryError(t *testing.T) {
	db := &dbtest.FakeDB{OnQuery: func(string, []any) ([][]any, error) { return nil, errors.New("down") }}
	_, err := NewPostgresSource(db, quiet).Load(context.Background())
	assert.ErrorContains(t, err, "load skills: down")

	_, err = NewPostgresSource(nil, quiet).Load(context.Background())
	assert.Error(t, err)
}
