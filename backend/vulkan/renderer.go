// Package vulkan provides a thin Vulkan backend implementing ui.Renderer,
// standing in for the Vulkan/Metal graphics backend the spec treats as an
// external collaborator. It owns a bare VkInstance (enough to prove the
// backend is real and swappable with backend/opengl) and otherwise tracks
// draw-list statistics on the CPU rather than building a full pipeline —
// a second, complete renderer is explicitly out of scope for this engine
// scaffold.
package vulkan

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"

	"pilotui/ui"
)

// Renderer is a minimal ui.Renderer backed by a Vulkan instance. It
// satisfies the same interface as backend/opengl.Renderer so a host can
// select either backend at startup.
type Renderer struct {
	instance vk.Instance
	width    int
	height   int
	fontTex  uint32 // opaque handle; this stub never actually binds a GPU image
	lastElem uint32
}

// NewRenderer creates a VkInstance and returns a Renderer sized for
// width x height. If loader initialization or instance creation fails (no
// Vulkan loader present, no compatible driver), it returns a nil Renderer
// and the error.
func NewRenderer(width, height int) (*Renderer, error) {
	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("vulkan: loader init: %w", err)
	}

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   "pilotui\x00",
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PEngineName:        "pilotui\x00",
		EngineVersion:      vk.MakeVersion(1, 0, 0),
		ApiVersion:         vk.ApiVersion10,
	}
	createInfo := &vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: appInfo,
	}

	var instance vk.Instance
	if ret := vk.CreateInstance(createInfo, nil, &instance); ret != vk.Success {
		return nil, fmt.Errorf("vulkan: create instance: %v", vk.Error(ret))
	}

	return &Renderer{instance: instance, width: width, height: height}, nil
}

// FontTextureID returns the backend's opaque font-texture handle. This
// stub has no font-atlas upload path, so the handle is never set and is
// always 0.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// Resize records the new viewport size; a full implementation would
// additionally recreate the swapchain here.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render sums the element (index) counts of the draw list's commands
// without issuing any GPU work — it exists to exercise the ui.Renderer
// contract end to end for a backend that can be swapped in for
// backend/opengl without the caller changing.
func (r *Renderer) Render(dl *ui.DrawList) error {
	if dl == nil {
		return nil
	}
	dl.Finalize()
	var elems uint32
	for _, cmd := range dl.CmdBuffer {
		elems += cmd.ElemCount
	}
	r.lastElem = elems
	return nil
}

// LastElementCount returns the element count from the most recent Render
// call, useful for tests that want to assert the stub actually walked
// the draw list.
func (r *Renderer) LastElementCount() uint32 {
	return r.lastElem
}

// Delete destroys the Vulkan instance.
func (r *Renderer) Delete() {
	if r.instance != nil {
		vk.DestroyInstance(r.instance, nil)
		r.instance = nil
	}
}
