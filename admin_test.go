package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"
)

func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := e.do(postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"secret"}}))
	if rec.Code != http.StatusFound {
		t.Fatalf("login status = %d, want 302", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatal("login did not set the admin cookie")
	return nil
}

func (e *testEnv) adminRequest(method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return e.do(req)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	rec := env.do(postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Error("login page does not show the error")
	}
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	for _, path := range []string{"/admin/dashboard", "/admin/messages", "/admin/api/stats"} {
		rec := env.adminRequest(http.MethodGet, path, nil)
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin/login" {
			t.Errorf("GET %s = %d %q, want redirect to login", path, rec.Code, rec.Header().Get("Location"))
		}
	}

	forged := &http.Cookie{Name: adminCookie, Value: "forged"}
	if rec := env.adminRequest(http.MethodGet, "/admin/dashboard", forged); rec.Code != http.StatusFound {
		t.Errorf("forged cookie status = %d, want 302", rec.Code)
	}
}

func TestAdminDashboardAndStats(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	cookie := env.login(t)

	env.get("/")
	env.get("/")
	env.srv.background.Wait()
	env.do(postForm("/contact", url.Values{
		"fullName": {"Grace"},
		"email":    {"grace@example.com"},
		"message":  {"COBOL?"},
	}))

	rec := env.adminRequest(http.MethodGet, "/admin/dashboard", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Grace") {
		t.Error("dashboard does not list the recent message")
	}

	rec = env.adminRequest(http.MethodGet, "/admin/api/stats", cookie)
	var stats AdminStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalVisitors != 2 || stats.UniqueVisitors != 1 || stats.TotalMessages != 1 {
		t.Errorf("stats = %+v", stats)
	}

	rec = env.adminRequest(http.MethodGet, "/admin/export/stats", cookie)
	if rec.Header().Get("Content-Disposition") == "" {
		t.Error("export is not served as an attachment")
	}
}

func TestAdminDeleteMessage(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	cookie := env.login(t)

	msg := ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hi", CreatedAt: testNow}
	if err := env.srv.store.saveMessage(&msg); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want int
	}{
		{"/admin/messages/abc", http.StatusBadRequest},
		{"/admin/messages/999", http.StatusNotFound},
		{"/admin/messages/" + strconv.FormatInt(msg.ID, 10), http.StatusOK},
		{"/admin/messages/" + strconv.FormatInt(msg.ID, 10), http.StatusNotFound},
	}
	for _, tt := range tests {
		if rec := env.adminRequest(http.MethodDelete, tt.path, cookie); rec.Code != tt.want {
			t.Errorf("DELETE %s = %d, want %d", tt.path, rec.Code, tt.want)
		}
	}
}

func TestAdminPrivacyCleanup(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	cookie := env.login(t)

	old := testNow.Add(-48 * time.Hour)
	if err := env.srv.store.recordVisit("old", "ua", "/", old); err != nil {
		t.Fatal(err)
	}
	if err := env.srv.store.recordVisit("new", "ua", "/", testNow); err != nil {
		t.Fatal(err)
	}

	rec := env.adminRequest(http.MethodPost, "/admin/privacy/delete-visitor-data", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env.srv.background.Wait()

	visitors, err := env.srv.store.listVisitors(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(visitors) != 1 || visitors[0].HashedIP != "new" {
		t.Errorf("visitors after cleanup = %+v", visitors)
	}
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	rec := env.get("/admin/logout")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == adminCookie && c.MaxAge >= 0 {
			t.Errorf("logout cookie = %+v, want expired", c)
		}
	}
}

func TestPrivacyPage(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	rec := env.get("/privacy")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Serhii Puzikov") {
		t.Errorf("privacy page = %d", rec.Code)
	}
}
