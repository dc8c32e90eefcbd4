// Package hotreload realizes the application contract a reloadable module
// satisfies: load once against an API registry, resize and update every
// frame, shut down on exit or just before a reload swaps in a new module.
// The boundary is expressed as an interface rather than a literal
// dlopen/LoadLibrary call so tests and single-binary builds can link a
// module statically (StaticLoader) instead of loading a .so/.dll.
package hotreload

import (
	"fmt"
	"log/slog"

	"pilotui/registry"
)

var (
	hotreloadLogLevel = new(slog.LevelVar)
	logger            = slog.New(slog.NewTextHandler(noopOutput{}, &slog.HandlerOptions{Level: hotreloadLogLevel}))
)

// noopOutput discards log output until a host installs its own handler;
// SetLogger below lets the example host redirect to os.Stderr.
type noopOutput struct{}

func (noopOutput) Write(p []byte) (int, error) { return len(p), nil }

// SetLogger replaces the package logger, e.g. to point it at the host's
// own slog.Handler instead of discarding output.
func SetLogger(l *slog.Logger) { logger = l }

// SetVerbose toggles debug-level logging for reload/load/shutdown events.
func SetVerbose(v bool) {
	if v {
		hotreloadLogLevel.Set(slog.LevelDebug)
	} else {
		hotreloadLogLevel.Set(slog.LevelInfo)
	}
}

// Module is the application contract a hot-reloadable module implements:
// app_load(api, prior_state) -> state, app_shutdown(state), app_resize(state),
// app_update(state). On reload, prior is the state returned by the
// previous module's Load, passed back unchanged — Load must tolerate a
// non-nil prior.
type Module interface {
	Load(api *registry.API, prior any) (state any, err error)
	Shutdown(state any)
	Resize(state any)
	Update(state any) error
}

// LoadResult reports whether a Loader produced a usable Module without
// forcing callers to inspect the underlying IOError directly — per the
// error-handling design, a failed load is an IOError surfaced through
// Valid/Err, never a panic.
type LoadResult struct {
	Module Module
	Valid  bool
	Err    error
}

// Loader obtains a Module instance — a concrete shared-library loader on
// platforms that support plugin.Open, or a StaticLoader for in-process
// linking and tests.
type Loader interface {
	Load() LoadResult
}

// StaticLoader wraps a Module already linked into the host binary,
// skipping the shared-library boundary entirely.
type StaticLoader struct {
	Module Module
}

// Load implements Loader.
func (s StaticLoader) Load() LoadResult {
	if s.Module == nil {
		return LoadResult{Err: fmt.Errorf("hotreload: static loader has no module")}
	}
	return LoadResult{Module: s.Module, Valid: true}
}

// Host drives a Module across its lifecycle and carries application state
// across reloads.
type Host struct {
	api    *registry.API
	loader Loader
	module Module
	state  any
}

// NewHost returns a Host that will load modules against api.
func NewHost(api *registry.API, loader Loader) *Host {
	return &Host{api: api, loader: loader}
}

// Load obtains a Module from the current Loader and calls its Load,
// passing along any state carried over from a prior module.
func (h *Host) Load() error {
	res := h.loader.Load()
	if !res.Valid {
		logger.Error("module load failed", "err", res.Err)
		return res.Err
	}
	state, err := res.Module.Load(h.api, h.state)
	if err != nil {
		logger.Error("app_load returned error", "err", err)
		return err
	}
	h.module = res.Module
	h.state = state
	logger.Debug("module loaded")
	return nil
}

// Reload shuts down the current module (if any), installs loader, and
// loads the replacement, carrying state across the swap.
func (h *Host) Reload(loader Loader) error {
	if h.module != nil {
		h.module.Shutdown(h.state)
	}
	h.loader = loader
	return h.Load()
}

// Resize forwards a viewport resize to the current module, if loaded.
func (h *Host) Resize() {
	if h.module != nil {
		h.module.Resize(h.state)
	}
}

// Update forwards one frame tick to the current module, if loaded.
func (h *Host) Update() error {
	if h.module == nil {
		return nil
	}
	return h.module.Update(h.state)
}

// Shutdown tears down the current module, if any, and clears state.
func (h *Host) Shutdown() {
	if h.module == nil {
		return
	}
	h.module.Shutdown(h.state)
	h.module = nil
	h.state = nil
	logger.Debug("module shut down")
}

// Loaded reports whether a module is currently installed.
func (h *Host) Loaded() bool {
	return h.module != nil
}
