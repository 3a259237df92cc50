package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"career-guide/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		App: config.AppConfig{
			AppName:          "career-guide-test",
			HTTPPort:         "0",
			CORSAllowOrigins: []string{"*"},
		},
		MarketData: config.MarketDataConfig{
			Source: config.MarketDataJSON,
			Path:   filepath.Join(t.TempDir(), "job_market_data.json"),
		},
		Extractor: config.ExtractorConfig{Mode: config.ExtractorKeyword},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	cfg := testConfig(t)

	c, err := NewContainer(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return New(cfg, c, logger)
}

func do(t *testing.T, a *App, method, path string, body any) (int, envelope, http.Header) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(t, a, req)
}

func send(t *testing.T, a *App, req *http.Request) (int, envelope, http.Header) {
	t.Helper()
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, resp.StatusCode, env.Status)
	return resp.StatusCode, env, resp.Header
}

type analysisData struct {
	StudentID     string            `json:"student_id"`
	Skills        []string          `json:"skills"`
	SkillGaps     []string          `json:"skill_gaps"`
	Pathway       map[string]any    `json:"pathway"`
	CareerMatches []json.RawMessage `json:"career_matches"`
}

func analyze(t *testing.T, a *App, text string) analysisData {
	t.Helper()
	status, env, _ := do(t, a, http.MethodPost, "/analyze_resume", map[string]string{"text": text})
	require.Equal(t, http.StatusOK, status)
	var d analysisData
	require.NoError(t, json.Unmarshal(env.Data, &d))
	return d
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	status, env, hdr := do(t, a, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", env.Message)
	assert.NotEmpty(t, hdr.Get("X-Request-ID"))
}

func TestAnalyzeResume(t *testing.T) {
	a := newTestApp(t)

	d := analyze(t, a, "I know Python and SQL")
	assert.Equal(t, "student_1", d.StudentID)
	assert.Equal(t, []string{"Python", "SQL"}, d.Skills)
	assert.Len(t, d.SkillGaps, 12)
	assert.Len(t, d.CareerMatches, 3)
	assert.Contains(t, d.Pathway, "Machine Learning")

	var top struct {
		Title           string   `json:"title"`
		MatchPercentage float64  `json:"match_percentage"`
		MatchingSkills  []string `json:"matching_skills"`
	}
	require.NoError(t, json.Unmarshal(d.CareerMatches[0], &top))
	assert.Equal(t, "Data Scientist", top.Title)
	assert.Equal(t, 50.0, top.MatchPercentage)
	assert.Equal(t, []string{"Python", "SQL"}, top.MatchingSkills)

	assert.Equal(t, "student_2", analyze(t, a, "JavaScript").StudentID)
}

func TestAnalyzeResume_Validation(t *testing.T) {
	a := newTestApp(t)

	status, env, _ := do(t, a, http.MethodPost, "/analyze_resume", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(env.Data), "text: required")

	for i, text := range []string{"", "   "} {
		status, env, _ = do(t, a, http.MethodPost, "/analyze_resume", map[string]string{"text": text})
		require.Equal(t, http.StatusOK, status, "text=%q", text)

		var d analysisData
		require.NoError(t, json.Unmarshal(env.Data, &d))
		assert.Equal(t, []string{}, d.Skills)
		assert.Len(t, d.SkillGaps, 14)
		assert.Equal(t, fmt.Sprintf("student_%d", i+1), d.StudentID)
	}
}

func TestStudentIDsMatchExactly(t *testing.T) {
	a := newTestApp(t)
	id := analyze(t, a, "Python").StudentID

	status, _, _ := do(t, a, http.MethodGet, "/student/%20"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = do(t, a, http.MethodPost, "/update_progress", map[string]string{"student_id": id + " ", "skill": "SQL"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAnalyzeUpload(t *testing.T) {
	a := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("Cloud Computing and DevOps"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze_resume/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	status, env, _ := send(t, a, req)
	require.Equal(t, http.StatusOK, status)

	var d analysisData
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.Equal(t, []string{"Cloud Computing", "DevOps"}, d.Skills)

	buf.Reset()
	mw = multipart.NewWriter(&buf)
	fw, err = mw.CreateFormFile("file", "resume.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte{0x89, 0x50})
	require.NoError(t, mw.Close())

	req = httptest.NewRequest(http.MethodPost, "/analyze_resume/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	status, _, _ = send(t, a, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, status)
}

func TestStudentEndpoints(t *testing.T) {
	a := newTestApp(t)
	id := analyze(t, a, "Python").StudentID

	status, env, _ := do(t, a, http.MethodGet, "/student/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	var rec struct {
		StudentID string          `json:"student_id"`
		Progress  map[string]bool `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, id, rec.StudentID)
	assert.Contains(t, rec.Progress, "Machine Learning")

	status, env, _ = do(t, a, http.MethodGet, "/student/student_404", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Student not found", env.Message)

	status, env, _ = do(t, a, http.MethodGet, "/students", nil)
	require.Equal(t, http.StatusOK, status)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestUpdateProgress(t *testing.T) {
	a := newTestApp(t)
	id := analyze(t, a, "Python").StudentID

	status, env, _ := do(t, a, http.MethodPost, "/update_progress", map[string]string{"student_id": id, "skill": "Machine Learning"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Progress updated successfully", env.Message)

	status, env, _ = do(t, a, http.MethodGet, "/student/"+id+"/progress", nil)
	require.Equal(t, http.StatusOK, status)
	var p struct {
		Completed int             `json:"completed"`
		Total     int             `json:"total"`
		Progress  map[string]bool `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 1, p.Completed)
	assert.True(t, p.Progress["Machine Learning"])

	status, env, _ = do(t, a, http.MethodPost, "/update_progress", map[string]string{"student_id": id, "skill": "Cooking"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid skill", env.Message)

	status, env, _ = do(t, a, http.MethodPost, "/update_progress", map[string]string{"student_id": "student_9", "skill": "SQL"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Student not found", env.Message)
}

func TestUpdateProfile(t *testing.T) {
	a := newTestApp(t)
	id := analyze(t, a, "Python").StudentID

	status, env, _ := do(t, a, http.MethodPost, "/update_profile/"+id, map[string]any{
		"name":        "Ana",
		"career_goal": map[string]string{"title": "Data Scientist"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Profile updated successfully", env.Message)

	status, env, _ = do(t, a, http.MethodPost, "/update_profile/"+id, map[string]any{"education": "BSc"})
	require.Equal(t, http.StatusOK, status)
	var profile struct {
		Name       string `json:"name"`
		Education  string `json:"education"`
		CareerGoal struct {
			Title string `json:"title"`
		} `json:"career_goal"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "BSc", profile.Education)
	assert.Equal(t, "Data Scientist", profile.CareerGoal.Title)

	status, env, _ = do(t, a, http.MethodPost, "/update_profile/"+id, map[string]any{"email": "Bob@X.com"})
	require.Equal(t, http.StatusOK, status)
	var stored struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stored))
	assert.Equal(t, "Bob@X.com", stored.Email)

	status, _, _ = do(t, a, http.MethodPost, "/update_profile/"+id, map[string]any{"email": "not-an-email"})
	assert.Equal(t, http.StatusOK, status)

	status, env, _ = do(t, a, http.MethodPost, "/update_profile/"+id, map[string]any{})
	require.Equal(t, http.StatusOK, status)
	var after struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Education string `json:"education"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &after))
	assert.Equal(t, "Ana", after.Name)
	assert.Equal(t, "not-an-email", after.Email)
	assert.Equal(t, "BSc", after.Education)

	status, env, _ = do(t, a, http.MethodPost, "/update_profile/"+id, map[string]any{"career_goal": map[string]string{}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(env.Data), "career_goal.title: required")

	status, _, _ = do(t, a, http.MethodPost, "/update_profile/student_77", map[string]any{})
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = do(t, a, http.MethodPost, "/update_profile/student_77", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMarketEndpoints(t *testing.T) {
	a := newTestApp(t)

	status, env, _ := do(t, a, http.MethodGet, "/resources/Machine%20Learning", nil)
	require.Equal(t, http.StatusOK, status)
	var res []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Len(t, res, 2)

	status, env, _ = do(t, a, http.MethodGet, "/resources/Cooking", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Resources not found for this skill", env.Message)

	status, env, _ = do(t, a, http.MethodGet, "/skills", nil)
	require.Equal(t, http.StatusOK, status)
	var skills []string
	require.NoError(t, json.Unmarshal(env.Data, &skills))
	assert.Len(t, skills, 14)

	status, env, _ = do(t, a, http.MethodGet, "/careers", nil)
	require.Equal(t, http.StatusOK, status)
	var careers []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &careers))
	require.Len(t, careers, 3)
	assert.Equal(t, "Data Scientist", careers[0].Title)

	status, env, _ = do(t, a, http.MethodGet, "/market_data", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"career_paths":{"Data Scientist"`)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	a := newTestApp(t)
	status, env, _ := do(t, a, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, env.Message)
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8000")
	require.NoError(t, err)
	assert.Equal(t, ":8000", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}
