// Example demonstrates a minimal GUI window with a panel and a few widgets,
// wired through the same hot-reload/registry boundary a real application
// module would use: this file plays the part of the platform host (GLFW
// window, OpenGL renderer, input adapter), while exampleModule plays the
// part of the reloadable application, reached only through the
// hotreload.Module contract and the registry.API/Data boundary.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"pilotui/backend/opengl"
	"pilotui/hotreload"
	"pilotui/platform"
	"pilotui/registry"
	"pilotui/ui"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "pilotui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	closer.Bind(renderer.Delete)

	inputAdapter := platform.NewAdapter(window)

	api := registry.New()
	data := registry.NewData()

	gui := ui.New(renderer, ui.WithStyle(ui.HighContrastStyle()))
	api.Add("PL_API_UI", gui)

	host := hotreload.NewHost(api, hotreload.StaticLoader{Module: newExampleModule(data)})
	if err := host.Load(); err != nil {
		return fmt.Errorf("load app module: %w", err)
	}
	closer.Bind(host.Shutdown)

	for !window.ShouldClose() {
		input := inputAdapter.Update(1.0 / 60.0)
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Resize(w, h)
		host.Resize()

		gui.PrepareInputHandling()
		displaySize := ui.Vec2{X: float32(w), Y: float32(h)}
		ctx := gui.Begin(input, displaySize, 1.0/60.0)
		data.Set("frame.ctx", ctx)

		if err := host.Update(); err != nil {
			slog.Error("app_update failed", "err", err)
		}

		if err := gui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		inputAdapter.ApplyCursor(ctx)

		window.SwapBuffers()
	}

	return nil
}
