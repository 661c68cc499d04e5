package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/config"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/handler"
	"github.com/janipakwan/pakwan-api/pkg/session"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "pakwan-api-test"},
		Session: config.SessionConfig{
			Secret:     "test-secret",
			TTL:        time.Hour,
			CookieName: "pakwan_session",
		},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	h := &Handlers{
		Auth: handler.NewAuthHandler(nil, sessions, cfg.Session),
	}
	return Setup(h, &Deps{Sessions: sessions, Cfg: cfg})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
	if body["service"] != "pakwan-api-test" {
		t.Errorf("service field = %q, want pakwan-api-test", body["service"])
	}
}

func TestUnknownActionRejected(t *testing.T) {
	router := newTestRouter()

	for _, action := range []string{"", "dropTables", "getEverything"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api?action="+action, nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("action %q: status = %d, want 400", action, w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["error"] != "Invalid action" {
			t.Errorf("action %q: error = %q, want Invalid action", action, body["error"])
		}
	}
}

func TestReadsWithMissingIdReturnEmptyList(t *testing.T) {
	router := newTestRouter()

	targets := []string{
		"/api?action=getCustomerOrders",
		"/api?action=getCustomerOrders&customerId=abc",
		"/api?action=getOrderItems",
		"/api?action=getOrderItems&orderId=abc",
		"/api?action=getOrderPayments",
	}
	for _, target := range targets {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", target, nil))

		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", target, w.Code)
		}
		if got := w.Body.String(); got != "[]" {
			t.Errorf("%s: body = %s, want empty list", target, got)
		}
	}
}

func TestGetSessionWithoutCookie(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api?action=getSession", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["session"] != false {
		t.Errorf("session = %v, want false", body["session"])
	}
}

func TestGetSessionWithValidCookie(t *testing.T) {
	router := newTestRouter()
	sessions := session.NewManager("test-secret", time.Hour)

	token, err := sessions.Issue(1, "admin@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api?action=getSession", nil)
	req.AddCookie(&http.Cookie{Name: "pakwan_session", Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Session bool `json:"session"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !body.Session {
		t.Error("session = false, want true with a valid cookie")
	}
	if body.User.Email != "admin@example.com" {
		t.Errorf("email = %q, want admin@example.com", body.User.Email)
	}
}

func TestAuthRequiredGatesActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "pakwan-api-test", AuthRequired: true},
		Session: config.SessionConfig{
			Secret:     "test-secret",
			TTL:        time.Hour,
			CookieName: "pakwan_session",
		},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	h := &Handlers{Auth: handler.NewAuthHandler(nil, sessions, cfg.Session)}
	router := Setup(h, &Deps{Sessions: sessions, Cfg: cfg})

	// Session actions stay reachable
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api?action=getSession", nil))
	if w.Code != http.StatusOK {
		t.Errorf("getSession status = %d, want 200", w.Code)
	}

	// Everything else is refused without a session
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api?action=getMenuItems", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("getMenuItems status = %d, want 400 without a session", w.Code)
	}
}
