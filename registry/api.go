// Package registry implements the two process-wide lookup tables the
// hot-reload boundary is built on: a named API table (pointers to
// function-table structs, e.g. "PL_API_UI") and a string-keyed data
// blackboard. Both are safe for concurrent use since the application
// module and the host frame loop may touch them from different
// goroutines during a reload.
package registry

import (
	"log/slog"
	"sync"
)

var (
	registryLogLevel = new(slog.LevelVar)
	logger           = slog.New(slog.NewTextHandler(noopOutput{}, &slog.HandlerOptions{Level: registryLogLevel}))
)

// noopOutput discards log output until a host installs its own handler.
type noopOutput struct{}

func (noopOutput) Write(p []byte) (int, error) { return len(p), nil }

// SetLogger replaces the package logger, e.g. to point it at the host's
// own slog.Handler instead of discarding output.
func SetLogger(l *slog.Logger) { logger = l }

// SetVerbose toggles debug-level logging of registry traffic.
func SetVerbose(v bool) {
	if v {
		registryLogLevel.Set(slog.LevelDebug)
	} else {
		registryLogLevel.Set(slog.LevelInfo)
	}
}

// API is a process-wide map from string names to registered pointers,
// following the same add/first/replace/remove shape as the Our Machinery-
// style plugin registries this scaffold's hot-reload boundary is modeled
// on: a name can have more than one provider (e.g. during a reload, while
// the old and new module briefly coexist), "first" returns whichever
// registered first, and "replace" swaps one specific pointer for another
// without disturbing the others.
type API struct {
	mu   sync.RWMutex
	regs map[string][]any
}

// New returns an empty API registry.
func New() *API {
	return &API{regs: make(map[string][]any)}
}

// Add registers ptr under name. Multiple pointers may share a name; First
// returns the earliest still-registered one.
func (a *API) Add(name string, ptr any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.regs[name] = append(a.regs[name], ptr)
}

// First returns the first pointer registered under name, or nil if none.
func (a *API) First(name string) any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	list := a.regs[name]
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

// Replace swaps new in for one registration of old, preserving its
// position and name; if old is registered more than once, only one of
// those registrations is replaced. Reports whether old was found.
func (a *API) Replace(old, new any) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for name, list := range a.regs {
		for i, p := range list {
			if p == old {
				list[i] = new
				a.regs[name] = list
				logger.Debug("api replaced", "name", name)
				return true
			}
		}
	}
	return false
}

// Remove unregisters ptr from whichever name it was added under. Reports
// whether ptr was found.
func (a *API) Remove(ptr any) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for name, list := range a.regs {
		for i, p := range list {
			if p == ptr {
				a.regs[name] = append(list[:i], list[i+1:]...)
				if len(a.regs[name]) == 0 {
					delete(a.regs, name)
				}
				return true
			}
		}
	}
	return false
}
