package router_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mem "pet-health-bot/internal/adapters/storage/memory"
	"pet-health-bot/internal/domain/analytics"
	"pet-health-bot/internal/prompts"
	"pet-health-bot/internal/router"
)

func newTestServer(t *testing.T, token string) (*httptest.Server, *analytics.Service) {
	t.Helper()

	svc := analytics.NewService(mem.NewAnalyticsRepo())
	pm, err := prompts.NewManager("")
	if err != nil {
		t.Fatalf("prompt manager: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Analytics:  svc,
		Prompts:    pm,
		AdminToken: token,
	}))
	t.Cleanup(ts.Close)
	return ts, svc
}

func doReq(t *testing.T, method, url, token string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, "secret")

	st, body := doReq(t, http.MethodGet, ts.URL+"/health", "")
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, body)
	}
}

func TestAdminAuth(t *testing.T) {
	ts, _ := newTestServer(t, "secret")

	if st, _ := doReq(t, http.MethodGet, ts.URL+"/admin/prompts/status", ""); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", st)
	}
	if st, _ := doReq(t, http.MethodGet, ts.URL+"/admin/prompts/status", "wrong"); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", st)
	}
	if st, _ := doReq(t, http.MethodGet, ts.URL+"/admin/prompts/status", "secret"); st != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", st)
	}
}

func TestAdminDisabledWithoutToken(t *testing.T) {
	ts, _ := newTestServer(t, "")

	if st, _ := doReq(t, http.MethodGet, ts.URL+"/admin/prompts/status", "anything"); st != http.StatusForbidden {
		t.Fatalf("expected 403 when admin token unset, got %d", st)
	}
}

func TestAnalyticsSummary(t *testing.T) {
	ts, svc := newTestServer(t, "secret")

	svc.Record(context.Background(), analytics.Event{
		UserID: 7, Kind: analytics.KindUserAction, Action: "main_menu",
	})
	svc.Record(context.Background(), analytics.Event{
		UserID: 8, Kind: analytics.KindAIChat, Action: "chat_general", Premium: true,
	})

	st, body := doReq(t, http.MethodGet, ts.URL+"/admin/analytics/summary", "secret")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, body)
	}

	var sum analytics.Summary
	if err := json.Unmarshal(body, &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.TotalEvents != 2 || sum.UniqueUsers != 2 || sum.AIChats != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	if st, _ := doReq(t, http.MethodGet, ts.URL+"/admin/analytics/summary?date=not-a-date", "secret"); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", st)
	}
}

func TestPromptsStatusAndReload(t *testing.T) {
	ts, _ := newTestServer(t, "secret")

	st, body := doReq(t, http.MethodGet, ts.URL+"/admin/prompts/status", "secret")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var status prompts.Status
	if err := json.Unmarshal(body, &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Templates == 0 {
		t.Fatalf("expected compiled-in templates, got %+v", status)
	}

	st, body = doReq(t, http.MethodPost, ts.URL+"/admin/prompts/reload", "secret")
	if st != http.StatusOK {
		t.Fatalf("expected 200 reload, got %d body=%s", st, body)
	}
}
