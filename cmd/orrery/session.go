package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/event"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/system"
	"github.com/lixenwraith/orrery/vmath"
)

// session wires a world, its spawner and optional catalogue watcher and metrics endpoint
type session struct {
	cfg     config.Config
	world   *system.World
	spawner *system.Spawner
	metrics *system.Metrics
	watcher *catalog.Watcher
	server  *http.Server
}

func newSession(cfg config.Config) (*session, error) {
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	metrics := system.NewMetrics()
	world, err := system.NewWorld(cat, system.Options{
		Seed:                 cfg.Seed,
		ExplosionTimeScaling: cfg.ExplosionTimeScaling,
		Metrics:              metrics,
	})
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:     cfg,
		world:   world,
		spawner: system.NewSpawner(world, vmath.NewFastRand(world.Seed()^parameter.SpawnerSeedSalt)),
		metrics: metrics,
	}

	if _, err := s.spawner.SpawnBatch(cfg.Asteroids); err != nil {
		return nil, fmt.Errorf("initial asteroids: %w", err)
	}

	if cfg.Catalog != "" {
		w, err := catalog.NewWatcher(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		if err := w.Start(); err != nil {
			w.Stop()
			return nil, err
		}
		s.watcher = w
	}

	if cfg.MetricsAddr != "" {
		s.serveMetrics(cfg.MetricsAddr)
	}
	return s, nil
}

// serveMetrics exposes the world's registry on /metrics
func (s *session) serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	s.server = &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()
	log.Printf("metrics on %s/metrics", addr)
}

// applyReloads swaps in any catalogue the watcher delivered; never blocks
func (s *session) applyReloads() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case r, ok := <-s.watcher.Reloads:
			if !ok {
				s.watcher = nil
				return
			}
			if r.Err != nil {
				log.Printf("catalogue reload %s: %v", r.Path, r.Err)
				continue
			}
			if err := s.world.SetCatalog(r.Catalog); err != nil {
				log.Printf("catalogue reload %s: %v", r.Path, err)
			}
		default:
			return
		}
	}
}

// drainEvents consumes and logs the frame's lifecycle events
func (s *session) drainEvents() []event.SimEvent {
	events := s.world.Events().Consume()
	for _, ev := range events {
		switch ev.Type {
		case event.EventBodyImpacted:
			log.Printf("t=%.2f body %d impacted %s at (%.1f, %.1f)", ev.Time, ev.BodyID, ev.Target, ev.Position.X, ev.Position.Y)
		case event.EventBodyEscaped:
			log.Printf("t=%.2f body %d escaped at (%.1f, %.1f)", ev.Time, ev.BodyID, ev.Position.X, ev.Position.Y)
		}
	}
	return events
}

func (s *session) close() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), parameter.MetricsShutdownTimeout)
		defer cancel()
		_ = s.server.Shutdown(ctx)
	}
}
