package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tech2saini/portfolio/internal/portfolio/service"
	"github.com/tech2saini/portfolio/internal/portfolio/store/drivers/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := memory.NewStore()
	sessions := &service.SessionManager{Sessions: st.Sessions()}

	router := NewRouter("test", false, st, slog.Default())
	router.SessionManager = sessions
	router.AuthService = &service.AuthService{
		Store:     st,
		Sessions:  sessions,
		TwoFactor: &service.TwoFactorService{Issuer: "PortfolioTest"},
	}
	router.ContentService = &service.ContentService{Store: st}
	router.ContactService = &service.ContactService{Store: st}
	router.NewsletterService = &service.NewsletterService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// doJSON issues a request with a JSON body. ip feeds X-Forwarded-For so each
// test group gets its own rate limit bucket; cookie carries the session.
func doJSON(t *testing.T, srv *httptest.Server, method, path, ip string, cookie *http.Cookie, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", ip)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, raw
}

func sessionCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func registerUser(t *testing.T, srv *httptest.Server, ip, email string) *http.Cookie {
	t.Helper()
	resp, _ := doJSON(t, srv, http.MethodPost, "/api/auth/register", ip, nil, map[string]string{
		"email":    email,
		"password": "password123",
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cookie := sessionCookieFrom(t, resp)
	require.True(t, cookie.HttpOnly)
	return cookie
}

func TestAuthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	const ip = "10.0.0.1"

	cookie := registerUser(t, srv, ip, "alice@example.com")

	t.Run("register rejects duplicates with exact message", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodPost, "/api/auth/register", ip, nil, map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
			"name":     "Alice Again",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.JSONEq(t, `{"error":"User already exists"}`, string(body))
	})

	t.Run("current user via cookie", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodGet, "/api/auth/user", ip, cookie, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile map[string]any
		require.NoError(t, json.Unmarshal(body, &profile))
		require.Equal(t, "alice@example.com", profile["email"])
		require.Equal(t, false, profile["twoFactorEnabled"])
		require.NotContains(t, profile, "passwordHash")
	})

	t.Run("current user without cookie is 401", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodGet, "/api/auth/user", ip, nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.JSONEq(t, `{"error":"Not authenticated"}`, string(body))
	})

	t.Run("bad login yields generic error", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodPost, "/api/auth/login", ip, nil, map[string]string{
			"email":    "alice@example.com",
			"password": "wrongpassword",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.JSONEq(t, `{"error":"Invalid credentials"}`, string(body))
	})

	t.Run("logout destroys the session and is idempotent", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodPost, "/api/auth/logout", ip, cookie, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"success":true}`, string(body))

		resp, _ = doJSON(t, srv, http.MethodGet, "/api/auth/user", ip, cookie, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, body = doJSON(t, srv, http.MethodPost, "/api/auth/logout", ip, cookie, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.JSONEq(t, `{"success":true}`, string(body))
	})
}

func TestTwoFactorEndpoints(t *testing.T) {
	srv := newTestServer(t)
	const ip = "10.0.0.2"

	cookie := registerUser(t, srv, ip, "bob@example.com")

	t.Run("setup returns secret and QR data URL", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodPost, "/api/auth/setup-2fa", ip, cookie, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var setup map[string]string
		require.NoError(t, json.Unmarshal(body, &setup))
		require.NotEmpty(t, setup["secret"])
		require.Equal(t, setup["secret"], setup["manualEntryKey"])
		require.Contains(t, setup["qrCode"], "data:image/png;base64,")
	})

	t.Run("verify with a bad code is 400", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodPost, "/api/auth/verify-2fa", ip, cookie, map[string]string{
			"token":  "000000",
			"secret": "JBSWY3DPEHPK3PXP",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.JSONEq(t, `{"error":"Invalid token"}`, string(body))
	})

	t.Run("setup requires a session", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/auth/setup-2fa", ip, nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestContentEndpoints(t *testing.T) {
	srv := newTestServer(t)
	const ip = "10.0.0.3"

	cookie := registerUser(t, srv, ip, "carol@example.com")

	t.Run("writes require a session", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/skills", ip, nil, map[string]any{
			"name": "Go", "level": 90,
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	var skillID string
	t.Run("create and list skills", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodPost, "/api/skills", ip, cookie, map[string]any{
			"name": "Go", "level": 90, "icon": "go", "color": "#00ADD8",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created map[string]any
		require.NoError(t, json.Unmarshal(body, &created))
		skillID = created["id"].(string)
		require.NotEmpty(t, skillID)

		resp, body = doJSON(t, srv, http.MethodGet, "/api/skills", ip, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var skills []map[string]any
		require.NoError(t, json.Unmarshal(body, &skills))
		require.Len(t, skills, 1)
	})

	t.Run("patch a skill", func(t *testing.T) {
		resp, body := doJSON(t, srv, http.MethodPut, "/api/skills/"+skillID, ip, cookie, map[string]any{
			"level": 95,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated map[string]any
		require.NoError(t, json.Unmarshal(body, &updated))
		require.Equal(t, float64(95), updated["level"])
		require.Equal(t, "Go", updated["name"], "untouched fields survive a patch")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPut, "/api/skills/missing", ip, cookie, map[string]any{"level": 1})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete a skill", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodDelete, "/api/skills/"+skillID, ip, cookie, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		_, body := doJSON(t, srv, http.MethodGet, "/api/skills", ip, nil, nil)
		require.JSONEq(t, "[]", string(body))
	})

	t.Run("blog drafts hidden from anonymous listing", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/blog", ip, cookie, map[string]any{
			"title": "Draft", "slug": "draft", "content": "wip",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp, _ = doJSON(t, srv, http.MethodPost, "/api/blog", ip, cookie, map[string]any{
			"title": "Live", "slug": "live", "content": "done", "published": true,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		_, body := doJSON(t, srv, http.MethodGet, "/api/blog", ip, nil, nil)
		var posts []map[string]any
		require.NoError(t, json.Unmarshal(body, &posts))
		require.Len(t, posts, 1)
		require.Equal(t, "live", posts[0]["slug"])

		_, body = doJSON(t, srv, http.MethodGet, "/api/blog?includeDrafts=true", ip, cookie, nil)
		require.NoError(t, json.Unmarshal(body, &posts))
		require.Len(t, posts, 2)
	})

	t.Run("project slug lookup", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/projects", ip, cookie, map[string]any{
			"title": "My Tool", "description": "d", "image": "i",
			"gradientFrom": "#000", "gradientTo": "#fff",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := doJSON(t, srv, http.MethodGet, "/api/projects/slug/My%20Tool", ip, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var p map[string]any
		require.NoError(t, json.Unmarshal(body, &p))
		require.Equal(t, "My Tool", p["title"])
	})
}

func TestContactAndNewsletterEndpoints(t *testing.T) {
	srv := newTestServer(t)
	const ip = "10.0.0.4"

	cookie := registerUser(t, srv, ip, "dave@example.com")

	t.Run("contact form round trip", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/contact", ip, nil, map[string]string{
			"name": "Visitor", "email": "v@example.com",
			"subject": "Hi", "message": "Hello there",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := doJSON(t, srv, http.MethodGet, "/api/contact", ip, cookie, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var msgs []map[string]any
		require.NoError(t, json.Unmarshal(body, &msgs))
		require.Len(t, msgs, 1)
		require.Equal(t, "Hi", msgs[0]["subject"])
	})

	t.Run("contact inbox requires a session", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodGet, "/api/contact", ip, nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("contact form validates required fields", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/contact", ip, nil, map[string]string{
			"name": "Visitor",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("newsletter subscribe and conflict", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/newsletter/subscribe", ip, nil, map[string]string{
			"email": "reader@example.com",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := doJSON(t, srv, http.MethodPost, "/api/newsletter/subscribe", ip, nil, map[string]string{
			"email": "reader@example.com",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.JSONEq(t, `{"error":"Email already subscribed"}`, string(body))
	})

	t.Run("unsubscribe then resubscribe", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodPost, "/api/newsletter/unsubscribe", ip, nil, map[string]string{
			"email": "reader@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, srv, http.MethodPost, "/api/newsletter/unsubscribe", ip, nil, map[string]string{
			"email": "reader@example.com",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = doJSON(t, srv, http.MethodPost, "/api/newsletter/subscribe", ip, nil, map[string]string{
			"email": "reader@example.com",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("subscriber list requires a session", func(t *testing.T) {
		resp, _ := doJSON(t, srv, http.MethodGet, "/api/newsletter/subscribers", ip, nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, body := doJSON(t, srv, http.MethodGet, "/api/newsletter/subscribers", ip, cookie, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var subs []map[string]any
		require.NoError(t, json.Unmarshal(body, &subs))
		require.Len(t, subs, 1)
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	const ip = "10.0.0.5"

	for _, path := range []string{"/livez", "/readyz"} {
		resp, body := doJSON(t, srv, http.MethodGet, path, ip, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		var health map[string]any
		require.NoError(t, json.Unmarshal(body, &health))
		require.Equal(t, "ok", health["status"], fmt.Sprintf("%s should report ok", path))
	}
}
