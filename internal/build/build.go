// Package build orchestrates the blog build: authors map, posts, grouping,
// author pages. Stages run synchronously; the first fatal error aborts the
// build and surfaces to the CLI.
package build

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/blogkit/internal/authors"
	"git.home.luguber.info/inful/blogkit/internal/config"
	"git.home.luguber.info/inful/blogkit/internal/logfields"
	"git.home.luguber.info/inful/blogkit/internal/metrics"
	"git.home.luguber.info/inful/blogkit/internal/posts"
	"git.home.luguber.info/inful/blogkit/internal/render"
)

// Stage names, stable for metrics labels.
const (
	StageLoadAuthors = "load_authors"
	StageLoadPosts   = "load_posts"
	StageGroup       = "group_authors"
	StageRender      = "render_pages"
)

// Result is the in-memory outcome of a build, consumed by the preview server
// and by tests.
type Result struct {
	AuthorsMap authors.Map
	Posts      []*posts.Post
	Grouped    map[string][]*posts.Post
}

// Builder runs the build pipeline for one configuration.
type Builder struct {
	cfg *config.Config
	rec metrics.Recorder
}

// New creates a Builder. A nil recorder disables metrics.
func New(cfg *config.Config, rec metrics.Recorder) *Builder {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Builder{cfg: cfg, rec: rec}
}

// Run executes the pipeline. The context is checked between stages; a
// canceled build returns the context error.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	result := &Result{}

	stages := []struct {
		name string
		fn   func() error
	}{
		{StageLoadAuthors, func() error { return b.loadAuthors(result) }},
		{StageLoadPosts, func() error { return b.loadPosts(result) }},
		{StageGroup, func() error { return b.group(result) }},
		{StageRender, func() error { return b.render(result) }},
	}

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			b.rec.IncBuildOutcome("canceled")
			return nil, err
		}
		stageStart := time.Now()
		err := stage.fn()
		elapsed := time.Since(stageStart)
		b.rec.ObserveStageDuration(stage.name, elapsed)
		if err != nil {
			b.rec.IncStageResult(stage.name, metrics.ResultFatal)
			b.rec.IncBuildOutcome("failed")
			slog.Error("build stage failed",
				logfields.Stage(stage.name),
				logfields.DurationMS(float64(elapsed.Milliseconds())),
				logfields.Error(err))
			return nil, err
		}
		b.rec.IncStageResult(stage.name, metrics.ResultSuccess)
		slog.Debug("build stage complete",
			logfields.Stage(stage.name),
			logfields.DurationMS(float64(elapsed.Milliseconds())))
	}

	b.rec.ObserveBuildDuration(time.Since(started))
	b.rec.IncBuildOutcome("success")
	b.rec.SetPostCount(len(result.Posts))
	b.rec.SetAuthorCount(len(result.AuthorsMap))
	slog.Info("blog build complete",
		logfields.Count(len(result.Posts)),
		slog.Int("authors", len(result.AuthorsMap)),
		logfields.DurationMS(float64(time.Since(started).Milliseconds())))
	return result, nil
}

func (b *Builder) loadAuthors(result *Result) error {
	if b.cfg.Content.AuthorsFile == "" {
		slog.Debug("no authors file configured, posts may only use inline authors")
		result.AuthorsMap = nil
		return nil
	}
	m, err := authors.LoadMap(b.cfg.Content.AuthorsFile)
	if err != nil {
		return err
	}
	result.AuthorsMap = m
	return nil
}

func (b *Builder) loadPosts(result *Result) error {
	list, err := posts.Load(posts.LoaderOptions{
		ContentDir:    b.cfg.Content.Dir,
		AuthorsMap:    result.AuthorsMap,
		BaseURL:       b.cfg.Site.BaseURL,
		IncludeDrafts: b.cfg.Content.IncludeDrafts,
		IncludeFuture: b.cfg.Content.IncludeFuture,
	})
	if err != nil {
		return err
	}
	result.Posts = list
	return nil
}

func (b *Builder) group(result *Result) error {
	result.Grouped = posts.GroupByAuthorKey(result.Posts, result.AuthorsMap)
	return nil
}

func (b *Builder) render(result *Result) error {
	renderer, err := render.NewRenderer(b.cfg)
	if err != nil {
		return err
	}
	return renderer.RenderAuthorPages(result.AuthorsMap, result.Grouped)
}
