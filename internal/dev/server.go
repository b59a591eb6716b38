package dev

import (
	"bytes"
	"context"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/markout-dev/markout/internal/config"
)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the loaded project file. Required.
	Config *config.Config

	// Logger receives server events. Defaults to slog.Default().
	Logger *slog.Logger

	// RebuildCommand overrides the default build command.
	RebuildCommand []string

	// OnBuildStart is called when a rebuild starts.
	OnBuildStart func()

	// OnBuild is called after each build attempt.
	OnBuild func(RebuildResult)

	// OnReload is called after browsers are told to reload.
	OnReload func(clients int)
}

// Server is the preview server. It serves the build output directory,
// rebuilds through the project's site program when sources change, and
// refreshes connected browsers over WebSocket.
type Server struct {
	config     *config.Config
	options    ServerOptions
	logger     *slog.Logger
	rebuilder  *Rebuilder
	watcher    *Watcher
	reload     *ReloadServer
	changeCh   chan Change
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// NewServer creates a new preview server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// The output directory is always ignored so a build cannot
	// retrigger itself.
	ignore := append([]string{cfg.Output}, DefaultIgnore...)
	ignore = append(ignore, cfg.Dev.Ignore...)

	s := &Server{
		config:  cfg,
		options: options,
		logger:  logger,
		rebuilder: NewRebuilder(RebuilderConfig{
			Dir:     cfg.Dir(),
			Command: options.RebuildCommand,
		}),
		watcher: NewWatcher(WatcherConfig{
			Paths:  CollectWatchPaths(cfg),
			Ignore: ignore,
		}),
	}
	if cfg.Dev.Reload {
		s.reload = NewReloadServer()
	}
	return s
}

// Start builds the site, then serves it until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	if !s.begin() {
		return nil
	}

	s.initialBuild(ctx)

	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		// Drop on overflow; the drain loop coalesces anyway.
		select {
		case s.changeCh <- change:
		default:
		}
	})
	go s.watcher.Start(ctx)
	go s.watchLoop(ctx)

	s.httpServer = &http.Server{
		Addr:    s.config.DevAddress(),
		Handler: s.Handler(),
	}
	s.logger.Info("preview running", "url", s.config.DevURL())

	errCh := make(chan error, 1)
	go func() { errCh <- s.httpServer.ListenAndServe() }()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// begin flips the server into the running state. It reports false when
// Start has already been called.
func (s *Server) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

// initialBuild runs the first build. A failure is not fatal: the
// preview keeps serving whatever output exists and shows the error
// overlay until a save fixes it.
func (s *Server) initialBuild(ctx context.Context) {
	s.logger.Info("building", "command", strings.Join(s.rebuilder.Command(), " "))
	result := s.rebuilder.Run(ctx)
	if s.options.OnBuild != nil {
		s.options.OnBuild(result)
	}
	if !result.Success {
		s.logger.Error("build failed", "output", result.Output)
		s.notifyError(result.Output)
		return
	}
	s.logger.Info("built", "duration", result.Duration.Round(time.Millisecond))
}

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	s.watcher.Stop()
	if s.reload != nil {
		s.reload.Close()
	}

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// Handler returns the HTTP handler serving the output directory plus
// the reload endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.reloadEnabled() {
		mux.HandleFunc(ReloadEndpoint, s.reload.HandleWebSocket)
	}
	mux.HandleFunc("/", s.serveFile)
	return mux
}

// watchLoop serializes change handling and coalesces bursts.
func (s *Server) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case first := <-s.changeCh:
			s.handleChanges(ctx, append([]Change{first}, s.drainPending()...))
		}
	}
}

func (s *Server) drainPending() []Change {
	var pending []Change
	for {
		select {
		case c := <-s.changeCh:
			pending = append(pending, c)
		default:
			return pending
		}
	}
}

// handleChanges handles a batch of file changes. Stylesheets that land
// directly in the output directory (an external CSS pipeline writing
// there, watched on purpose) hot-swap without a rebuild; everything
// else is a build input and triggers one.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}

	rebuild := false
	var swapped string

	for _, change := range changes {
		s.logger.Debug("file changed", "path", change.Path)
		if change.Type == ChangeStyle && isWithinDir(change.Path, s.config.OutputPath()) {
			swapped = change.Path
			continue
		}
		rebuild = true
	}

	if rebuild {
		s.rebuildAndReload(ctx)
		return
	}

	if !s.reloadEnabled() {
		s.logger.Info("stylesheet changed (live reload disabled)", "path", swapped)
		return
	}

	// The client refreshes every stylesheet link, so one message
	// covers the batch.
	s.reload.NotifyCSS(swapped)
	s.logger.Info("stylesheets refreshed", "clients", s.reload.ClientCount())
}

func (s *Server) rebuildAndReload(ctx context.Context) {
	if s.options.OnBuildStart != nil {
		s.options.OnBuildStart()
	}

	s.logger.Info("rebuilding")
	result := s.rebuilder.Run(ctx)

	if s.options.OnBuild != nil {
		s.options.OnBuild(result)
	}

	if !result.Success {
		s.logger.Error("build failed", "output", result.Output)
		s.notifyError(result.Output)
		return
	}

	s.logger.Info("rebuilt", "duration", result.Duration.Round(time.Millisecond))
	s.clearError()
	s.notifyReload()
}

// serveFile maps the request to a file under the output directory.
// Requests without an extension resolve to path/index.html, matching
// the layout the build writes.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	rel, ok := requestFile(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	root := s.config.OutputPath()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		s.serveNotFound(w, r, root)
		return
	}
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Previews must never cache; edits have to show on the next load.
	w.Header().Set("Cache-Control", "no-store")

	if strings.HasSuffix(rel, ".html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(s.injectReload(data))
		return
	}

	ctype := mime.TypeByExtension(path.Ext(rel))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", ctype)
	w.Write(data)
}

// serveNotFound serves the site's 404.html when the build produced
// one, else a plain 404.
func (s *Server) serveNotFound(w http.ResponseWriter, r *http.Request, root string) {
	data, err := os.ReadFile(filepath.Join(root, "404.html"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(s.injectReload(data))
}

// injectReload splices the reload script into an HTML document.
func (s *Server) injectReload(data []byte) []byte {
	if !s.reloadEnabled() {
		return data
	}

	script := []byte(ReloadScript)
	if idx := bytes.LastIndex(data, []byte("</body>")); idx != -1 {
		return splice(data, idx, script)
	}
	if idx := bytes.LastIndex(data, []byte("</html>")); idx != -1 {
		return splice(data, idx, script)
	}
	return append(data, script...)
}

func splice(data []byte, idx int, insert []byte) []byte {
	out := make([]byte, 0, len(data)+len(insert))
	out = append(out, data[:idx]...)
	out = append(out, insert...)
	out = append(out, data[idx:]...)
	return out
}

// requestFile maps a URL path to a slash-separated file path relative
// to the output directory. Reports false for paths that cannot map to
// a served file.
func requestFile(urlPath string) (string, bool) {
	if strings.ContainsRune(urlPath, 0) || strings.Contains(urlPath, "\\") {
		return "", false
	}

	// Anchored cleaning: "/a/../../x" cleans to "/x", so the result
	// never escapes the output root.
	cleaned := path.Clean(urlPath)
	if !strings.HasPrefix(cleaned, "/") {
		return "", false
	}

	rel := strings.TrimPrefix(cleaned, "/")
	if rel == "" {
		return "index.html", true
	}
	if path.Ext(rel) == "" {
		return rel + "/index.html", true
	}
	return rel, true
}

func (s *Server) reloadEnabled() bool {
	return s.reload != nil
}

func (s *Server) notifyReload() {
	if !s.reloadEnabled() {
		s.logger.Info("rebuild complete (live reload disabled)")
		return
	}

	s.reload.NotifyReload()
	if s.options.OnReload != nil {
		s.options.OnReload(s.reload.ClientCount())
	}
	s.logger.Info("browsers reloaded", "clients", s.reload.ClientCount())
}

func (s *Server) notifyError(errMsg string) {
	if !s.reloadEnabled() {
		return
	}
	s.reload.NotifyError(errMsg)
}

func (s *Server) clearError() {
	if !s.reloadEnabled() {
		return
	}
	s.reload.ClearError()
}

func isWithinDir(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}
