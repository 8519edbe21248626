package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nishanth262/portfolio/internal/content"
	"github.com/Nishanth262/portfolio/internal/sections"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func yearClock(year int) sections.Clock {
	return sections.ClockFunc(func() time.Time {
		return time.Date(year, time.March, 3, 9, 0, 0, 0, time.UTC)
	})
}

type testServer struct {
	router *gin.Engine
	logs   *bytes.Buffer
}

func newTestServer(t *testing.T, repo content.Repository, year int) *testServer {
	t.Helper()
	logs := &bytes.Buffer{}
	router, err := NewRouter(repo, Options{
		Clock:  yearClock(year),
		Logger: log.New(logs, "", 0),
	})
	require.NoError(t, err)
	return &testServer{router: router, logs: logs}
}

func (s *testServer) get(t *testing.T, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestIndex_RendersAllSections(t *testing.T) {
	srv := newTestServer(t, content.NewStaticRepository(), 2026)

	rec := srv.get(t, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `id="experience"`)
	assert.Contains(t, body, `id="projects"`)
	assert.Contains(t, body, `id="footer"`)
	assert.Contains(t, body, "HRUTHA TECHNOLOGIES")
	assert.Contains(t, body, "University of Mysore")
	assert.Contains(t, body, "RFID Attendance System")
	assert.Contains(t, body, "Weather App")
	assert.Contains(t, body, "2026 Nishanth Gowda R S")
	assert.Contains(t, body, `target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, body, `data-icon="briefcase"`)
	assert.Contains(t, body, `data-icon="arrow-up"`)
	assert.Contains(t, body, "window.scrollTo({top: 0")
}

func TestIndex_TechnologyOrder(t *testing.T) {
	srv := newTestServer(t, content.NewStaticRepository(), 2026)
	body := srv.get(t, "/sections/experience").Body.String()

	last := -1
	for _, tech := range []string{"Python", "Machine Learning", "Data Science", "Data Visualization"} {
		idx := strings.Index(body, ">"+tech+"</span>")
		require.NotEqual(t, -1, idx, tech)
		assert.Greater(t, idx, last, "%s out of order", tech)
		last = idx
	}
}

func TestExperienceFragment_EntryOrder(t *testing.T) {
	repo := content.NewStaticRepository(content.WithExperience(
		content.ExperienceEntry{ID: 2, Role: "Later Role"},
		content.ExperienceEntry{ID: 1, Role: "Earlier Role"},
	))
	srv := newTestServer(t, repo, 2026)
	body := srv.get(t, "/sections/experience").Body.String()

	assert.Less(t, strings.Index(body, "Later Role"), strings.Index(body, "Earlier Role"))
}

func TestProjectsFragment_Filter(t *testing.T) {
	repo := content.NewStaticRepository(content.WithCategories("All", "Python", "CSS"))
	srv := newTestServer(t, repo, 2026)

	tests := []struct {
		target    string
		wantCards int
		want      []string
		notWant   []string
	}{
		{target: "/sections/projects", wantCards: 2, want: []string{"RFID Attendance System", "Weather App"}},
		{target: "/sections/projects?filter=", wantCards: 2},
		{target: "/sections/projects?filter=Python", wantCards: 1, want: []string{"RFID Attendance System"}, notWant: []string{"Weather App"}},
		{target: "/sections/projects?filter=CSS", wantCards: 1, want: []string{"Weather App"}, notWant: []string{"RFID Attendance System"}},
		{target: "/sections/projects?filter=NonexistentTag", wantCards: 0},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := srv.get(t, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Equal(t, tt.wantCards, strings.Count(body, "data-project-id="))
			assert.Contains(t, body, "data-project-grid")
			for _, s := range tt.want {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestProjectsFragment_ActiveButton(t *testing.T) {
	repo := content.NewStaticRepository(content.WithCategories("All", "OpenWeather API"))
	srv := newTestServer(t, repo, 2026)

	body := srv.get(t, "/sections/projects?filter=OpenWeather+API").Body.String()
	assert.Contains(t, body, `data-active-filter="OpenWeather API"`)
	assert.Contains(t, body, "/sections/projects?filter=OpenWeather&#43;API")
	assert.Equal(t, 1, strings.Count(body, `aria-pressed="true"`))
}

func TestFooterFragment_YearFollowsClock(t *testing.T) {
	for _, year := range []int{2019, 2042} {
		srv := newTestServer(t, content.NewStaticRepository(), year)
		body := srv.get(t, "/sections/footer").Body.String()
		assert.Contains(t, body, "&copy; "+strconv.Itoa(year)+" Nishanth Gowda R S")
	}
}

func TestFooterFragment_NavLinksInOrder(t *testing.T) {
	srv := newTestServer(t, content.NewStaticRepository(), 2026)
	body := srv.get(t, "/sections/footer").Body.String()

	last := -1
	for _, anchor := range []string{"#home", "#about", "#skills", "#projects", "#experience", "#contact"} {
		idx := strings.Index(body, `href="`+anchor+`"`)
		require.NotEqual(t, -1, idx, anchor)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestAPI_Projects(t *testing.T) {
	srv := newTestServer(t, content.NewStaticRepository(), 2026)

	decodeIDs := func(t *testing.T, rec *httptest.ResponseRecorder) []int {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code)
		var projects []content.ProjectEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
		out := []int{}
		for _, p := range projects {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []int{1, 2}, decodeIDs(t, srv.get(t, "/api/projects")))
	assert.Equal(t, []int{1}, decodeIDs(t, srv.get(t, "/api/projects?filter=Python")))
	assert.Equal(t, []int{2}, decodeIDs(t, srv.get(t, "/api/projects?filter=CSS")))
	assert.Equal(t, []int{}, decodeIDs(t, srv.get(t, "/api/projects?filter=NonexistentTag")))
}

func TestAPI_ProjectByID(t *testing.T) {
	srv := newTestServer(t, content.NewStaticRepository(), 2026)

	rec := srv.get(t, "/api/projects/2")
	require.Equal(t, http.StatusOK, rec.Code)
	var p content.ProjectEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Weather App", p.Title)

	assert.Equal(t, http.StatusNotFound, srv.get(t, "/api/projects/99").Code)
	assert.Equal(t, http.StatusBadRequest, srv.get(t, "/api/projects/abc").Code)
}

func TestAPI_ExperienceEducationCategories(t *testing.T) {
	srv := newTestServer(t, content.NewStaticRepository(), 2026)

	rec := srv.get(t, "/api/experience")
	require.Equal(t, http.StatusOK, rec.Code)
	var experience []content.ExperienceEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &experience))
	require.Len(t, experience, 1)
	assert.Equal(t, "Jan 2024 – Jun 2024", experience[0].Period)

	rec = srv.get(t, "/api/education")
	require.Equal(t, http.StatusOK, rec.Code)
	var edu content.Education
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edu))
	assert.Equal(t, "BSc in Computer Science", edu.Degree)

	rec = srv.get(t, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["All"]`, rec.Body.String())
}

type failingRepo struct {
	content.Repository
}

func (failingRepo) Projects(context.Context) ([]content.ProjectEntry, error) {
	return nil, errors.New("disk on fire")
}

func TestRepositoryFailure(t *testing.T) {
	srv := newTestServer(t, failingRepo{Repository: content.NewStaticRepository()}, 2026)

	rec := srv.get(t, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "data-error")
	assert.NotContains(t, rec.Body.String(), "disk on fire")

	rec = srv.get(t, "/api/projects")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to load projects"}`, rec.Body.String())

	rec = srv.get(t, "/api/projects/1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Equal(t, http.StatusOK, srv.get(t, "/sections/experience").Code)
	assert.Contains(t, srv.logs.String(), "disk on fire")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, content.NewStaticRepository(), 2026)
	rec := srv.get(t, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, content.NewStaticRepository(), 2026)
	rec := srv.get(t, "/static/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scroll-behavior: smooth")
	assert.Empty(t, srv.logs.String())
}

