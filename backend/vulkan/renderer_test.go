package vulkan

import (
	"testing"

	"pilotui/ui"
)

func TestRenderAccountsForElementCount(t *testing.T) {
	r := &Renderer{width: 800, height: 600}

	dl := ui.AcquireDrawList()
	defer ui.ReleaseDrawList(dl)
	dl.AddRect(0, 0, 10, 10, 0xFFFFFFFF)
	dl.AddRect(20, 20, 10, 10, 0xFFFFFFFF)

	if err := r.Render(dl); err != nil {
		t.Fatalf("Render() = %v, want nil", err)
	}
	if r.LastElementCount() == 0 {
		t.Fatal("LastElementCount() = 0, want > 0 after rendering two rects")
	}
}

func TestRenderNilDrawListIsNoop(t *testing.T) {
	r := &Renderer{}
	if err := r.Render(nil); err != nil {
		t.Fatalf("Render(nil) = %v, want nil", err)
	}
}

func TestResizeUpdatesDimensions(t *testing.T) {
	r := &Renderer{width: 100, height: 100}
	r.Resize(1920, 1080)
	if r.width != 1920 || r.height != 1080 {
		t.Fatalf("after Resize: width=%d height=%d, want 1920x1080", r.width, r.height)
	}
}
