package hotreload

import (
	"errors"
	"testing"

	"pilotui/registry"
)

type fakeModule struct {
	loadCalls     int
	shutdownCalls int
	resizeCalls   int
	updateCalls   int
	loadErr       error
	priorSeen     any
}

func (m *fakeModule) Load(api *registry.API, prior any) (any, error) {
	m.loadCalls++
	m.priorSeen = prior
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return "state", nil
}

func (m *fakeModule) Shutdown(state any) { m.shutdownCalls++ }
func (m *fakeModule) Resize(state any)   { m.resizeCalls++ }
func (m *fakeModule) Update(state any) error {
	m.updateCalls++
	return nil
}

func TestHostLoadAndLifecycle(t *testing.T) {
	mod := &fakeModule{}
	h := NewHost(registry.New(), StaticLoader{Module: mod})

	if err := h.Load(); err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if !h.Loaded() {
		t.Fatal("Loaded() = false after successful Load")
	}
	h.Resize()
	if err := h.Update(); err != nil {
		t.Fatalf("Update() = %v, want nil", err)
	}
	h.Shutdown()

	if mod.loadCalls != 1 || mod.resizeCalls != 1 || mod.updateCalls != 1 || mod.shutdownCalls != 1 {
		t.Fatalf("call counts = %+v, want all 1", mod)
	}
	if h.Loaded() {
		t.Fatal("Loaded() = true after Shutdown")
	}
}

func TestHostReloadCarriesStateAcrossModules(t *testing.T) {
	api := registry.New()
	first := &fakeModule{}
	h := NewHost(api, StaticLoader{Module: first})
	if err := h.Load(); err != nil {
		t.Fatalf("initial Load() = %v", err)
	}

	second := &fakeModule{}
	if err := h.Reload(StaticLoader{Module: second}); err != nil {
		t.Fatalf("Reload() = %v", err)
	}

	if first.shutdownCalls != 1 {
		t.Fatalf("first.shutdownCalls = %d, want 1", first.shutdownCalls)
	}
	if second.priorSeen != "state" {
		t.Fatalf("second.priorSeen = %v, want %q (state returned by first.Load)", second.priorSeen, "state")
	}
}

func TestHostLoadSurfacesIOError(t *testing.T) {
	h := NewHost(registry.New(), StaticLoader{})
	err := h.Load()
	if err == nil {
		t.Fatal("Load() with no module = nil error, want an error")
	}
	if h.Loaded() {
		t.Fatal("Loaded() = true after a failed Load")
	}
}

func TestHostLoadPropagatesAppLoadError(t *testing.T) {
	wantErr := errors.New("boom")
	mod := &fakeModule{loadErr: wantErr}
	h := NewHost(registry.New(), StaticLoader{Module: mod})

	if err := h.Load(); !errors.Is(err, wantErr) {
		t.Fatalf("Load() = %v, want %v", err, wantErr)
	}
	if h.Loaded() {
		t.Fatal("Loaded() = true after app_load returned an error")
	}
}
