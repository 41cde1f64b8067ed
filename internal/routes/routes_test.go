package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/recruiting-backend/internal/config"
	"github.com/talentgate/recruiting-backend/internal/dto"
	"github.com/talentgate/recruiting-backend/internal/handlers"
	"github.com/talentgate/recruiting-backend/internal/models"
	"github.com/talentgate/recruiting-backend/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	tokens map[string]string // role fixture name -> access token
}

// newTestEnv stands up the full route table over an in-memory store with
// four accounts: applicant, manager (owns job 1), rival (another manager)
// and admin.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}, &models.RefreshToken{}, &models.SystemLog{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}

	accounts := []struct {
		name  string
		email string
		role  string
	}{
		{"applicant", "avery@example.com", models.RoleApplicant},
		{"manager", "morgan@example.com", models.RoleHiringManager},
		{"rival", "sam@example.com", models.RoleHiringManager},
		{"admin", "admin@example.com", models.RoleAdmin},
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	for _, a := range accounts {
		user := models.User{FullName: a.name, Email: a.email, Password: string(hash), Role: a.role}
		if err := db.Create(&user).Error; err != nil {
			t.Fatalf("failed to create %s: %v", a.name, err)
		}
	}

	job := models.Job{
		UserID:          2,
		Department:      "Engineering",
		ListingTitle:    "Backend Engineer",
		JobTitle:        "Backend Engineer",
		JobDescription:  "description",
		ExperienceLevel: "mid",
		ListingStatus:   models.ListingOpen,
		DateListed:      time.Now().UTC(),
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("failed to create job: %v", err)
	}
	app := models.Application{
		UserID:            1,
		JobID:             job.ID,
		DateApplied:       time.Now().UTC(),
		ApplicationStatus: models.StatusPending,
	}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	authService := services.NewAuthService(db, cfg)

	fiberApp := fiber.New()
	Setup(
		fiberApp,
		cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(services.NewUserService(db)),
		handlers.NewJobHandler(services.NewJobService(db)),
		handlers.NewApplicationHandler(services.NewApplicationService(db)),
		handlers.NewStatsHandler(services.NewStatsService(db)),
		handlers.NewHealthHandler(),
	)

	tokens := map[string]string{}
	for _, a := range accounts {
		resp, err := authService.Login(&dto.LoginRequest{Email: a.email, Password: "password123"})
		if err != nil {
			t.Fatalf("failed to login %s: %v", a.name, err)
		}
		tokens[a.name] = resp.AccessToken
	}

	return &testEnv{app: fiberApp, db: db, tokens: tokens}
}

func (e *testEnv) request(t *testing.T, method, path, token string, payload interface{}) (int, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp.StatusCode, raw
}

func TestLoginOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/users/login", "", dto.LoginRequest{
		Email: "admin@example.com", Password: "password123",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	var resp dto.AuthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != 4 || resp.Role != models.RoleAdmin || resp.AccessToken == "" {
		t.Fatalf("unexpected auth response: %+v", resp)
	}

	status, _ = env.request(t, http.MethodPost, "/users/login", "", dto.LoginRequest{
		Email: "admin@example.com", Password: "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", status)
	}
}

func TestAuthorizationMatrixOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
		want   int
	}{
		{"jobs require a credential", http.MethodGet, "/api/job/", "", nil, http.StatusUnauthorized},
		{"applicant cannot create jobs", http.MethodPost, "/api/job/", env.tokens["applicant"],
			dto.CreateJobRequest{Department: "X", ListingTitle: "X", JobTitle: "X"}, http.StatusForbidden},
		{"rival manager cannot edit job", http.MethodPut, "/api/job/1", env.tokens["rival"],
			map[string]string{"jobTitle": "Hijacked"}, http.StatusForbidden},
		{"manager cannot transfer", http.MethodPut, "/api/job/transfer", env.tokens["manager"],
			dto.TransferJobRequest{JobID: 1, FromUserID: 2, ToUserID: 3}, http.StatusForbidden},
		{"stranger cannot read profile", http.MethodGet, "/users/2", env.tokens["applicant"], nil, http.StatusForbidden},
		{"applicant cannot review", http.MethodPut, "/api/application/manager/1", env.tokens["applicant"],
			dto.UpdateApplicationStatusRequest{ApplicationStatus: models.StatusReviewed}, http.StatusForbidden},
		{"rival cannot list job applications", http.MethodGet, "/api/application/job/1", env.tokens["rival"], nil, http.StatusForbidden},
		{"applicant cannot read admin stats", http.MethodGet, "/api/stats/admin", env.tokens["applicant"], nil, http.StatusForbidden},
		{"manager cannot read applicant stats", http.MethodGet, "/api/stats/applicant", env.tokens["manager"], nil, http.StatusForbidden},
		{"missing job is 404", http.MethodGet, "/api/job/999", env.tokens["applicant"], nil, http.StatusNotFound},
	}

	for _, tc := range cases {
		status, body := env.request(t, tc.method, tc.path, tc.token, tc.body)
		if status != tc.want {
			t.Fatalf("%s: expected %d, got %d: %s", tc.name, tc.want, status, body)
		}
	}
}

func TestJobListShapeOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodGet, "/api/job/?page=1&items=20", env.tokens["applicant"], nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	var resp dto.JobListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || resp.Page != 1 || resp.Items != 20 || len(resp.Jobs) != 1 {
		t.Fatalf("unexpected list shape: %+v", resp)
	}
}

func TestProfileResponseOmitsPassword(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodGet, "/users/1", env.tokens["applicant"], nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if strings.Contains(strings.ToLower(string(body)), "password") {
		t.Fatalf("profile response leaks password: %s", body)
	}
}

// A store outage must come back as a generic 500, not as a 404 for a record
// that exists, and must not echo driver internals to the client.
func TestStoreFailureReturnsServerError(t *testing.T) {
	env := newTestEnv(t)

	sqlDB, err := env.db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.Close()

	status, body := env.request(t, http.MethodPut, "/api/job/1", env.tokens["manager"],
		map[string]string{"jobTitle": "Renamed"})
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500 for a store failure, got %d: %s", status, body)
	}
	if strings.Contains(strings.ToLower(string(body)), "sql") {
		t.Fatalf("response echoes store internals: %s", body)
	}
}

func TestJobValidationErrorOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/api/job/", env.tokens["manager"],
		dto.CreateJobRequest{})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d: %s", status, body)
	}
}

func TestAcceptCascadeOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPut, "/api/application/manager/1", env.tokens["manager"],
		dto.UpdateApplicationStatusRequest{ApplicationStatus: models.StatusAccepted})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var job models.Job
	if err := env.db.First(&job, "id = ?", 1).Error; err != nil {
		t.Fatalf("failed to load job: %v", err)
	}
	if job.ListingStatus != models.ListingClosed {
		t.Fatalf("expected job closed after acceptance, got %q", job.ListingStatus)
	}
}
