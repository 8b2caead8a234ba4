package preview

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gotml-dev/gotml/pkg/dom"
)

func testPage(r *http.Request) (*dom.Node, error) {
	return dom.Html(
		dom.Head(dom.Title("Preview")),
		dom.Body(dom.Div(dom.ID("main"), "hello")),
	), nil
}

func TestServerServesPage(t *testing.T) {
	s := NewServer(ServerOptions{})
	s.Page("/", testPage)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Errorf("doctype missing: %q", body)
	}
	if !strings.Contains(body, `<div id="main">hello</div>`) {
		t.Errorf("page content missing: %q", body)
	}
}

func TestServerRebuildsPerRequest(t *testing.T) {
	calls := 0
	s := NewServer(ServerOptions{})
	s.Page("/", func(r *http.Request) (*dom.Node, error) {
		calls++
		return dom.Div("hi"), nil
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
	}
	if calls != 3 {
		t.Errorf("page func called %d times, want 3", calls)
	}
}

func TestServerReloadScriptInjection(t *testing.T) {
	s := NewServer(ServerOptions{LiveReload: true})
	s.Page("/", testPage)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	scriptIdx := strings.Index(body, "_gotml/reload")
	bodyIdx := strings.Index(body, "</body>")
	if scriptIdx == -1 {
		t.Fatal("reload script not injected")
	}
	if bodyIdx != -1 && scriptIdx > bodyIdx {
		t.Error("reload script injected after </body>")
	}
}

func TestServerNoReloadScriptByDefault(t *testing.T) {
	s := NewServer(ServerOptions{})
	s.Page("/", testPage)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "_gotml/reload") {
		t.Error("reload script injected with live reload disabled")
	}
}

func TestServerPageError(t *testing.T) {
	s := NewServer(ServerOptions{})
	s.Page("/", func(r *http.Request) (*dom.Node, error) {
		return nil, errors.New("boom <tag>")
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "boom &lt;tag&gt;") {
		t.Errorf("escaped error message missing: %q", body)
	}
}

func TestServerBuilderFailure(t *testing.T) {
	bad := dom.Define("preview-bad", nil, func(attrs *dom.AttrSet, children []*dom.Node) (*dom.Node, error) {
		return nil, errors.New("builder broke")
	})

	s := NewServer(ServerOptions{})
	s.Page("/", func(r *http.Request) (*dom.Node, error) {
		return dom.Html(dom.Body(bad())), nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "preview-bad") {
		t.Errorf("error page missing component tag: %q", rec.Body.String())
	}
}

func TestServerCollapsedOption(t *testing.T) {
	card := dom.Define("preview-card", []string{"label"}, func(attrs *dom.AttrSet, children []*dom.Node) (*dom.Node, error) {
		label, _ := attrs.Get("label")
		return dom.NewElement(nil, "section", label)
	})

	s := NewServer(ServerOptions{Collapsed: true})
	s.Page("/", func(r *http.Request) (*dom.Node, error) {
		return dom.Div(card(dom.Attr{Key: "label", Value: "x"})), nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), `<preview-card label="x">`) {
		t.Errorf("collapsed component missing: %q", rec.Body.String())
	}
}

func TestServerNotFound(t *testing.T) {
	s := NewServer(ServerOptions{})
	s.Page("/", testPage)

	req := httptest.NewRequest("GET", "/missing", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	s := NewServer(ServerOptions{})
	s.Page("/", testPage)

	// Generate one request so counters exist.
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	req = httptest.NewRequest("GET", "/metrics", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "gotml_preview_requests_total") {
		t.Error("request counter missing from /metrics")
	}
}

func TestReloadHubBroadcast(t *testing.T) {
	s := NewServer(ServerOptions{LiveReload: true})
	s.Page("/", testPage)

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/_gotml/reload"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Wait for the hub to register the client.
	deadline := time.Now().Add(2 * time.Second)
	for s.hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if s.hub.ClientCount() != 1 {
		t.Fatalf("ClientCount = %d, want 1", s.hub.ClientCount())
	}

	s.NotifyChanged()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if msg.Type != ReloadTypeFull {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeFull)
	}
}

func TestInjectReloadScript(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"before body close", "<html><body><p>x</p></body></html>"},
		{"before html close", "<html><p>x</p></html>"},
		{"appended", "<p>x</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := injectReloadScript(tt.html)
			if !strings.Contains(got, "_gotml/reload") {
				t.Fatal("script not injected")
			}
			if idx := strings.Index(tt.html, "</body>"); idx != -1 {
				if strings.Index(got, "_gotml/reload") > strings.Index(got, "</body>") {
					t.Error("script after </body>")
				}
			}
		})
	}
}
