package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("Experienced in Python and SQL"), 0o644))

	out, err := execute(t, "analyze", "--file", resume, "--market-data", filepath.Join(dir, "market.json"), "--seed", "7")
	require.NoError(t, err)

	var got struct {
		StudentID string   `json:"student_id"`
		Skills    []string `json:"skills"`
		SkillGaps []string `json:"skill_gaps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.StudentID)
	assert.Equal(t, []string{"Python", "SQL"}, got.Skills)
	assert.NotContains(t, got.SkillGaps, "Python")
	assert.FileExists(t, filepath.Join(dir, "market.json"))
}

func TestInitMarketDataCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "market.json")

	out, err := execute(t, "init-market-data", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "14 skills, 3 careers")

	_, err = execute(t, "init-market-data", "--path", path)
	assert.Error(t, err)

	_, err = execute(t, "init-market-data", "--path", path, "--force")
	assert.NoError(t, err)
	initMarketDataForce = false
}

func TestChooserFor_SeedIsDeterministic(t *testing.T) {
	a, b := chooserFor(42), chooserFor(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Choose(5), b.Choose(5))
	}
	assert.Equal(t, 0, chooserFor(1).Choose(0))
}
