// Package app implements the application layer for ember.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/ember/internal/adapters/content"
	"go.trai.ch/ember/internal/adapters/watcher"
	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
	"go.trai.ch/ember/internal/engine/cache"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	wsLoader     ports.WorkspaceLoader
	wsStore      ports.WorkspaceStore
	pool         ports.TaskPool
	watch        ports.Watcher
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	wsLoader ports.WorkspaceLoader,
	wsStore ports.WorkspaceStore,
	pool ports.TaskPool,
	watch ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: configLoader,
		wsLoader:     wsLoader,
		wsStore:      wsStore,
		pool:         pool,
		watch:        watch,
		logger:       log,
		tracer:       tracer,
	}
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// Save writes the workspace back to disk after validation. Useful to
	// normalize files and refresh the content digest.
	Save bool
}

// Check validates every resource of the workspace at dir and reports the
// broken ones. Returns domain.ErrValidationFailed when any resource is
// invalid.
func (a *App) Check(ctx context.Context, dir string, opts CheckOptions) error {
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return err
	}
	a.logger.SetJSON(cfg.LogJSON)

	ctx, span := a.tracer.Start(ctx, "check")
	defer span.End()
	span.SetAttribute("dir", dir)

	sess, err := a.openSession(ctx, dir, cfg)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer sess.close()

	verdicts, err := sess.drain(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if opts.Save {
		sess.cache.SaveWorkspace(sess.ws.Properties, sess.ws.UserProperties, sess.ws.Dir)
		if _, err := sess.drain(ctx); err != nil {
			span.RecordError(err)
			return err
		}
	}

	invalid := a.reportVerdicts(verdicts)
	if len(invalid) > 0 {
		err := errors.Join(domain.ErrValidationFailed, fmt.Errorf("%d resources are invalid", len(invalid)))
		span.RecordError(err)
		return err
	}
	return nil
}

// Watch validates the workspace at dir, then keeps it validated: file
// changes under the workspace re-validate the resources referencing
// them, and settings changes are folded into the cache. Blocks until the
// context is canceled.
func (a *App) Watch(ctx context.Context, dir string) error {
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return err
	}
	a.logger.SetJSON(cfg.LogJSON)

	sess, err := a.openSession(ctx, dir, cfg)
	if err != nil {
		return err
	}
	defer sess.close()

	verdicts, err := sess.drain(ctx)
	if err != nil {
		return err
	}
	a.reportVerdicts(verdicts)

	idx := watcher.BuildRefIndex(sess.cache.UnsafeResources(), sess.resolver)

	changed := make(chan []string, 16)
	deb := watcher.NewDebouncer(cfg.DebounceWindow, func(paths []string) {
		select {
		case changed <- paths:
		case <-ctx.Done():
		}
	})

	if err := a.watch.Start(ctx, sess.ws.Dir); err != nil {
		return err
	}
	defer func() {
		_ = a.watch.Stop()
	}()

	go func() {
		for ev := range a.watch.Events() {
			deb.Add(ev.Path)
		}
	}()

	a.logger.Info("watching workspace", "dir", sess.ws.Dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case paths := <-changed:
			if err := a.handleChanges(ctx, sess, idx, paths); err != nil {
				return err
			}
		}
	}
}

// session is one workspace loaded into a live cache, with the resolver
// both share.
type session struct {
	ws       *ports.LoadedWorkspace
	cache    *cache.Cache
	resolver ports.FileResolver
	tick     time.Duration
	log      ports.Logger
}

// openSession loads the workspace and fills a fresh cache with its
// resources. The caller drains the scheduled work.
func (a *App) openSession(_ context.Context, dir string, cfg domain.ToolConfig) (*session, error) {
	ws, err := a.wsLoader.Load(dir)
	if err != nil {
		return nil, err
	}

	resolver := content.NewResolver(ws.Dir, cfg.AppDir)
	c := cache.New(a.pool, a.wsStore, resolver, a.logger)

	c.UpdateSettings(ws.Settings)
	for _, res := range ws.Resources {
		c.AddResource(res)
	}
	c.BuildCache()

	a.logger.Info("workspace loaded", "dir", ws.Dir, "resources", len(ws.Resources))

	return &session{
		ws:       ws,
		cache:    c,
		resolver: resolver,
		tick:     cfg.TickInterval,
		log:      a.logger,
	}, nil
}

// drain ticks the cache until all scheduled work has completed and
// returns the final verdict per resource that was validated.
func (s *session) drain(ctx context.Context) (map[string]bool, error) {
	verdicts := make(map[string]bool)
	collect := func() {
		for _, report := range s.cache.DequeuePendingUpdates() {
			verdicts[report.ResourceID] = report.Valid
		}
	}

	for s.cache.HasPendingWork() {
		if err := ctx.Err(); err != nil {
			// Let the queue settle so close does not trip the teardown
			// assertion.
			for s.cache.HasPendingWork() {
				s.cache.TickPendingWork()
				time.Sleep(s.tick)
			}
			collect()
			return verdicts, err
		}
		s.cache.TickPendingWork()
		collect()
		if s.cache.HasPendingWork() {
			time.Sleep(s.tick)
		}
	}
	collect()
	return verdicts, nil
}

func (s *session) close() {
	for s.cache.HasPendingWork() {
		s.cache.TickPendingWork()
		time.Sleep(s.tick)
	}
	s.cache.DequeuePendingUpdates()
	s.cache.Close()
}

// handleChanges reacts to a debounced batch of file changes: settings
// file edits update the cached settings, everything else re-validates
// the resources referencing the touched paths.
func (a *App) handleChanges(ctx context.Context, sess *session, idx *watcher.RefIndex, paths []string) error {
	propertiesPath := filepath.Join(sess.ws.Dir, domain.PropertiesFileName)
	for _, path := range paths {
		if filepath.Clean(path) != propertiesPath {
			continue
		}
		ws, err := a.wsLoader.Load(sess.ws.Dir)
		if err != nil {
			a.logger.Warn("settings reload failed", "err", err)
			break
		}
		sess.cache.UpdateSettings(ws.Settings)
		a.logger.Info("settings reloaded")
		break
	}

	ids := idx.Affected(paths)
	if len(ids) == 0 {
		return nil
	}

	a.logger.Debug("files changed", "paths", len(paths), "resources", len(ids))
	sess.cache.Revalidate(ids)

	verdicts, err := sess.drain(ctx)
	if err != nil {
		return err
	}
	a.reportVerdicts(verdicts)
	return nil
}

// reportVerdicts logs each verdict and returns the invalid ids, sorted.
func (a *App) reportVerdicts(verdicts map[string]bool) []string {
	var invalid []string
	for _, id := range sortedKeys(verdicts) {
		if verdicts[id] {
			a.logger.Debug("resource valid", "id", id)
			continue
		}
		a.logger.Warn("resource invalid", "id", id)
		invalid = append(invalid, id)
	}
	return invalid
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
