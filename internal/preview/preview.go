// Package preview serves the generated blog locally and rebuilds it when
// content or the authors map changes.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.home.luguber.info/inful/blogkit/internal/build"
	"git.home.luguber.info/inful/blogkit/internal/config"
	"git.home.luguber.info/inful/blogkit/internal/logfields"
	"git.home.luguber.info/inful/blogkit/internal/metrics"
)

// debounceWindow batches rapid editor save events into one rebuild.
const debounceWindow = 250 * time.Millisecond

// buildStatus tracks the current build state for error display.
type buildStatus struct {
	mu           sync.RWMutex
	lastError    error
	hasGoodBuild bool // true if at least one successful build exists
}

func (bs *buildStatus) setError(err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = err
}

func (bs *buildStatus) setSuccess() {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = nil
	bs.hasGoodBuild = true
}

func (bs *buildStatus) getStatus() (hasError bool, err error, hasGoodBuild bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.lastError != nil, bs.lastError, bs.hasGoodBuild
}

// Serve builds the blog once, then watches the content directory and serves
// the output dir until ctx is canceled.
func Serve(ctx context.Context, cfg *config.Config) error {
	if cfg.Preview == nil {
		return errors.New("preview requires a preview section in the configuration")
	}

	reg := prom.NewRegistry()
	builder := build.New(cfg, metrics.NewPrometheusRecorder(reg))

	status := &buildStatus{}
	if _, err := builder.Run(ctx); err != nil {
		// Initial build failures are not fatal in preview: serve the error,
		// let the user fix the content and trigger a rebuild by saving.
		status.setError(err)
		slog.Error("initial build failed", logfields.Error(err))
	} else {
		status.setSuccess()
	}

	watcher, err := setupWatcher(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	rebuildReq := make(chan struct{}, 1)
	go rebuildWorker(ctx, builder, status, rebuildReq)

	server := newServer(cfg, status, reg)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	go watchLoop(ctx, watcher, rebuildReq)

	slog.Info("preview server listening",
		logfields.URL(fmt.Sprintf("http://localhost:%d", cfg.Preview.Port)),
		logfields.Path(cfg.Output.Directory))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func setupWatcher(cfg *config.Config) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the content tree recursively; fsnotify watches are not recursive.
	err = filepath.WalkDir(cfg.Content.Dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch content directory: %w", err)
	}

	if cfg.Content.AuthorsFile != "" {
		// The authors file may live outside the content dir.
		if err := watcher.Add(filepath.Dir(cfg.Content.AuthorsFile)); err != nil {
			slog.Warn("cannot watch authors file", logfields.Path(cfg.Content.AuthorsFile), logfields.Error(err))
		}
	}
	return watcher, nil
}

// watchLoop debounces filesystem events into rebuild requests.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, rebuildReq chan<- struct{}) {
	var timer *time.Timer
	trigger := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceWindow, func() {
			select {
			case rebuildReq <- struct{}{}:
			default: // a rebuild is already pending
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("content change detected", logfields.Path(event.Name))
			// New directories need their own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", logfields.Error(err))
		}
	}
}

func rebuildWorker(ctx context.Context, builder *build.Builder, status *buildStatus, rebuildReq <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuildReq:
			started := time.Now()
			if _, err := builder.Run(ctx); err != nil {
				status.setError(err)
				slog.Error("rebuild failed", logfields.Error(err))
				continue
			}
			status.setSuccess()
			slog.Info("rebuild complete", logfields.DurationMS(float64(time.Since(started).Milliseconds())))
		}
	}
}

func newServer(cfg *config.Config, status *buildStatus, reg *prom.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		hasError, _, _ := status.getStatus()
		if hasError {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("last build failed\n"))
			return
		}
		_, _ = w.Write([]byte("ok\n"))
	})

	files := http.FileServer(http.Dir(cfg.Output.Directory))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		hasError, err, hasGoodBuild := status.getStatus()
		if hasError && !hasGoodBuild {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = fmt.Fprintf(w, "build failed:\n\n%v\n", err)
			return
		}
		files.ServeHTTP(w, r)
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Preview.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
