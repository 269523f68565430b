package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/socialhub/socialhub-api/internal/api/handler"
	"github.com/socialhub/socialhub-api/internal/api/middleware"
	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/service"
)

// In-memory repositories backing the full HTTP stack, so the end-to-end
// scenarios run against the real services, middleware, and error mapping.

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := *user
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

type memSessionRepo struct {
	sessions map[string]*domain.Session
}

func (r *memSessionRepo) Create(_ context.Context, session *domain.Session) error {
	if _, exists := r.sessions[session.Token]; exists {
		return domain.ErrDuplicateToken
	}
	clone := *session
	r.sessions[session.Token] = &clone
	return nil
}

func (r *memSessionRepo) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	if s, ok := r.sessions[token]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrSessionNotFound
}

type memUploadRepo struct {
	logs   []*domain.UploadLog
	nextID int
}

func (r *memUploadRepo) Insert(_ context.Context, log *domain.UploadLog) (*domain.UploadLog, error) {
	r.nextID++
	created := *log
	created.ID = fmt.Sprintf("log_%d", r.nextID)
	r.logs = append(r.logs, &created)
	clone := created
	return &clone, nil
}

func (r *memUploadRepo) CountPlatformUnits(_ context.Context, userID string, from, to time.Time) (int, error) {
	units := 0
	for _, log := range r.logs {
		if log.UserID != userID || log.CreatedAt.Before(from) || !log.CreatedAt.Before(to) {
			continue
		}
		units += len(log.Platforms)
	}
	return units, nil
}

type memJobRepo struct {
	jobs []*domain.AIJob
}

func (r *memJobRepo) Insert(_ context.Context, job *domain.AIJob) (*domain.AIJob, error) {
	created := *job
	created.ID = fmt.Sprintf("job_%d", len(r.jobs)+1)
	r.jobs = append(r.jobs, &created)
	clone := created
	return &clone, nil
}

type memProductRepo struct{}

func (memProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return p, nil
}
func (memProductRepo) ListByUser(context.Context, string) ([]domain.Product, error) {
	return nil, nil
}
func (memProductRepo) FindByID(context.Context, string, string) (*domain.Product, error) {
	return nil, domain.ErrProductNotFound
}
func (memProductRepo) Update(context.Context, *domain.Product) error { return nil }
func (memProductRepo) Delete(context.Context, string, string) error  { return nil }

type memOrderRepo struct{}

func (memOrderRepo) Insert(_ context.Context, o *domain.Order) (*domain.Order, error) {
	return o, nil
}

type unlocked struct{}

func (unlocked) Acquire(context.Context, string, time.Time) (bool, error) { return true, nil }
func (unlocked) Release(context.Context, string, time.Time) error         { return nil }

type testStack struct {
	e     *echo.Echo
	users *memUserRepo
}

func newTestStack() *testStack {
	log := zerolog.Nop()
	users := &memUserRepo{users: make(map[string]*domain.User)}
	sessions := &memSessionRepo{sessions: make(map[string]*domain.Session)}

	authService := service.NewAuthService(users, sessions, 0, log)
	uploadService := service.NewUploadService(&memUploadRepo{}, domain.DefaultPlanLimits(), unlocked{}, log)
	commerceService := service.NewCommerceService(memProductRepo{}, memOrderRepo{}, &memJobRepo{}, log)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	authHandler := handler.NewAuthHandler(authService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	aiHandler := handler.NewAIHandler(commerceService)

	authRequired := middleware.Auth(authService)
	ultraProOnly := middleware.PlanOnly(domain.PlanUltraPro)

	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/me", authHandler.Me, authRequired)
	e.GET("/uploads/stats", uploadHandler.Stats, authRequired)
	e.POST("/upload", uploadHandler.Upload, authRequired)
	e.POST("/ai/edit", aiHandler.Edit, authRequired, ultraProOnly)

	return &testStack{e: e, users: users}
}

func (s *testStack) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	fields := make(map[string]json.RawMessage)
	_ = json.Unmarshal(rec.Body.Bytes(), &fields)
	return rec, fields
}

func str(raw json.RawMessage) string {
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}

func TestEndToEnd_SignupUploadQuota(t *testing.T) {
	stack := newTestStack()

	// Signup on the free plan.
	rec, fields := stack.do(t, http.MethodPost, "/auth/signup", "",
		`{"name":"Ana","email":"a@x.com","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Login with the same credentials.
	rec, fields = stack.do(t, http.MethodPost, "/auth/login", "",
		`{"email":"a@x.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token := str(fields["token"])
	if token == "" {
		t.Fatalf("login: token missing")
	}

	// 3-platform upload consumes 3 units.
	rec, _ = stack.do(t, http.MethodPost, "/upload", token,
		`{"media_type":"video","platforms":["instagram","facebook","tiktok"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload 1: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, fields = stack.do(t, http.MethodGet, "/uploads/stats", token, "")
	if rec.Code != http.StatusOK || string(fields["used"]) != "3" {
		t.Fatalf("stats: expected used=3, got %d: %s", rec.Code, rec.Body.String())
	}

	// One more unit reaches the free-plan ceiling of 4.
	rec, _ = stack.do(t, http.MethodPost, "/upload", token,
		`{"media_type":"image","platforms":["x"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload 2: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// The next request is rejected with the used/limit pair.
	rec, fields = stack.do(t, http.MethodPost, "/upload", token,
		`{"media_type":"image","platforms":["instagram"]}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("upload 3: expected 429, got %d: %s", rec.Code, rec.Body.String())
	}
	if string(fields["used"]) != "4" || string(fields["limit"]) != "4" {
		t.Fatalf("quota payload: expected used=4 limit=4, got %s", rec.Body.String())
	}
}

func TestEndToEnd_DuplicateSignupConflicts(t *testing.T) {
	stack := newTestStack()

	rec, _ := stack.do(t, http.MethodPost, "/auth/signup", "",
		`{"name":"Ana","email":"a@x.com","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", rec.Code)
	}

	rec, _ = stack.do(t, http.MethodPost, "/auth/signup", "",
		`{"name":"Ana Again","email":"a@x.com","password":"other66"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate signup: expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestEndToEnd_AuthFailuresAre401(t *testing.T) {
	stack := newTestStack()

	// Missing header.
	rec, _ := stack.do(t, http.MethodGet, "/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", rec.Code)
	}

	// Unknown token.
	rec, _ = stack.do(t, http.MethodGet, "/me", "nope", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown token: expected 401, got %d", rec.Code)
	}

	// Malformed header.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	raw := httptest.NewRecorder()
	stack.e.ServeHTTP(raw, req)
	if raw.Code != http.StatusUnauthorized {
		t.Fatalf("malformed header: expected 401, got %d", raw.Code)
	}

	// Wrong password.
	stack.do(t, http.MethodPost, "/auth/signup", "",
		`{"name":"Ana","email":"a@x.com","password":"secret1"}`)
	rec, _ = stack.do(t, http.MethodPost, "/auth/login", "",
		`{"email":"a@x.com","password":"wrong99"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}
}

func TestEndToEnd_AIEditPlanGate(t *testing.T) {
	stack := newTestStack()

	_, fields := stack.do(t, http.MethodPost, "/auth/signup", "",
		`{"name":"Ana","email":"a@x.com","password":"secret1"}`)
	token := str(fields["token"])

	// Free plan is rejected.
	rec, _ := stack.do(t, http.MethodPost, "/ai/edit", token,
		`{"source_url":"https://cdn.example.com/v.mp4","operations":["trim"]}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("free plan: expected 403, got %d: %s", rec.Code, rec.Body.String())
	}

	// Upgrade out-of-band, as the billing collaborator would.
	for _, u := range stack.users.users {
		u.Plan = domain.PlanUltraPro
	}

	rec, fields = stack.do(t, http.MethodPost, "/ai/edit", token,
		`{"source_url":"https://cdn.example.com/v.mp4","operations":["trim"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("ultra_pro: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if str(fields["status"]) != "processing" {
		t.Fatalf("expected processing status, got %s", rec.Body.String())
	}
}
