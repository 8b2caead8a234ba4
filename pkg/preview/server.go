package preview

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gotml-dev/gotml/pkg/dom"
	"github.com/gotml-dev/gotml/pkg/render"
)

// PageFunc builds the document for one preview page. It is called on
// every request, so edits to page code show up on the next refresh.
type PageFunc func(r *http.Request) (*dom.Node, error)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Addr is the listen address (default: ":8080").
	Addr string

	// Pretty renders pages in indented form.
	Pretty bool

	// Collapsed renders user components as their own tag instead of
	// their expansion.
	Collapsed bool

	// LiveReload injects a reload client script into each page and
	// serves a WebSocket endpoint at /_gotml/reload.
	LiveReload bool

	// Verbose enables request logging.
	Verbose bool
}

// Server serves rendered documents over HTTP.
type Server struct {
	options    ServerOptions
	router     chi.Router
	renderer   *render.Renderer
	hub        *ReloadHub
	pageMW     []func(http.Handler) http.Handler
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// NewServer creates a new preview server. Pages are registered with
// Page before calling Start.
func NewServer(options ServerOptions) *Server {
	if options.Addr == "" {
		options.Addr = ":8080"
	}

	var hub *ReloadHub
	if options.LiveReload {
		hub = NewReloadHub()
	}

	s := &Server{
		options: options,
		router:  chi.NewRouter(),
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty:    options.Pretty,
			Collapsed: options.Collapsed,
		}),
		hub:    hub,
		pageMW: []func(http.Handler) http.Handler{Metrics(), Tracing()},
	}

	s.router.Use(chimw.Recoverer)
	if options.Verbose {
		s.router.Use(chimw.Logger)
	}

	// The reload and metrics endpoints stay outside the page
	// middleware: the WebSocket upgrade needs the raw ResponseWriter.
	if hub != nil {
		s.router.Get("/_gotml/reload", hub.HandleWebSocket)
	}
	s.router.Handle("/metrics", promhttp.Handler())

	return s
}

// Page registers a page at the given route pattern.
func (s *Server) Page(pattern string, fn PageFunc) {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.servePage(w, r, fn)
	})
	for i := len(s.pageMW) - 1; i >= 0; i-- {
		h = s.pageMW[i](h)
	}
	s.router.Method(http.MethodGet, pattern, h)
}

// servePage builds, renders and writes one page.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, fn PageFunc) {
	doc, err := fn(r)
	if err != nil {
		s.serveError(w, err)
		return
	}

	html, err := s.renderer.RenderToString(doc)
	if err != nil {
		s.serveError(w, err)
		return
	}

	if s.reloadEnabled() {
		html = injectReloadScript(html)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// serveError writes a render failure as an HTML error page.
func (s *Server) serveError(w http.ResponseWriter, err error) {
	s.logError("Render failed: %v", err)

	reloadScript := ""
	if s.reloadEnabled() {
		reloadScript = ReloadClientScript
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Preview Error</title></head>
<body style="font-family: monospace; padding: 40px; background: #1a1a1a; color: #fff;">
<h1 style="color: #ff5555;">Render Failed</h1>
<pre style="white-space: pre-wrap;">%s</pre>
%s
</body>
</html>`, dom.EscapeText(dom.EscapeUTF8, err.Error()), reloadScript)
}

// injectReloadScript inserts the reload client before </body>, or
// before </html>, or at the end if neither is present.
func injectReloadScript(html string) string {
	if idx := strings.LastIndex(html, "</body>"); idx != -1 {
		return html[:idx] + ReloadClientScript + html[idx:]
	}
	if idx := strings.LastIndex(html, "</html>"); idx != -1 {
		return html[:idx] + ReloadClientScript + html[idx:]
	}
	return html + ReloadClientScript
}

// Handler returns the server's HTTP handler for mounting into a
// larger router or for testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// NotifyChanged tells all connected browsers to reload.
func (s *Server) NotifyChanged() {
	if s.reloadEnabled() {
		s.hub.NotifyReload()
		s.log("Reloaded %d browsers", s.hub.ClientCount())
	}
}

// NotifyError shows an error overlay on all connected browsers.
func (s *Server) NotifyError(errMsg string) {
	if s.reloadEnabled() {
		s.hub.NotifyError(errMsg)
	}
}

// ClearError clears the error overlay on all connected browsers.
func (s *Server) ClearError() {
	if s.reloadEnabled() {
		s.hub.ClearError()
	}
}

// Start runs the server until the context is canceled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:    s.options.Addr,
		Handler: s.router,
	}
	s.mu.Unlock()

	s.log("Preview running at http://localhost%s", s.options.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the server and closes all reload connections.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

func (s *Server) reloadEnabled() bool {
	return s.options.LiveReload && s.hub != nil
}

// log logs a message if verbose mode is enabled.
func (s *Server) log(format string, args ...any) {
	if !s.options.Verbose {
		return
	}
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// logError logs an error message.
func (s *Server) logError(format string, args ...any) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(os.Stderr, "[%s] %s%s%s\n", timestamp, "\033[31m", fmt.Sprintf(format, args...), "\033[0m")
}
