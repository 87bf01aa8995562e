// Package app runs a demo inside a GLFW window with an OpenGL 4.1 core
// context and feeds it the per-frame world state and input.
package app

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/loov/hrtime"

	"github.com/adinfit/glsteps/render"
)

func init() { runtime.LockOSThread() }

type Config struct {
	Title      string
	Width      int
	Height     int
	ShowInfo   bool
	Fullscreen bool

	// Resources is the directory assets are loaded from.
	Resources  string
	CPUProfile string
}

// DefaultConfig returns the window setup shared by all demos.
func DefaultConfig(title string) Config {
	return Config{
		Title:     title,
		Width:     1366,
		Height:    768,
		ShowInfo:  true,
		Resources: "res",
	}
}

// RegisterFlags binds the config to command line flags.
func (cfg *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flags.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "use the primary monitor")
	flags.BoolVar(&cfg.ShowInfo, "info", cfg.ShowInfo, "show frame timing in the title")
	flags.StringVar(&cfg.Resources, "res", cfg.Resources, "resource directory")
	flags.StringVar(&cfg.CPUProfile, "cpuprofile", cfg.CPUProfile, "profile")
}

// Resource joins path elements onto the resource directory.
func (cfg *Config) Resource(elem ...string) string {
	return filepath.Join(append([]string{cfg.Resources}, elem...)...)
}

// Demo is a single rendering demonstration.
type Demo interface {
	// Init creates the GPU resources, it is called once the context is current.
	Init(ctx *render.Context, world *World) error
	// Frame updates and draws one frame. An error stops the loop.
	Frame(world *World) error
	Destroy()
}

// KeyHandler is implemented by demos that react to key toggles.
type KeyHandler interface {
	HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
}

// ScrollHandler is implemented by demos that react to the mouse wheel.
type ScrollHandler interface {
	HandleScroll(dx, dy float64)
}

// Run opens the window, initializes demo and runs the frame loop until the
// window is closed or a frame fails.
func Run(cfg Config, demo Demo) error {
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return fmt.Errorf("unable to create cpu-profile %q: %w", cfg.CPUProfile, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("unable to start cpu-profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	ctx := &render.Context{}
	if err := ctx.Init(); err != nil {
		return err
	}

	world := NewWorld()
	world.NextFrameGLFW(window)

	controls := &world.Controls
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		controls.HandleKey(key, action, mods)
		if handler, ok := demo.(KeyHandler); ok {
			handler.HandleKey(key, action, mods)
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		controls.MouseMove(x, y)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonRight {
			return
		}
		grab := action != glfw.Release
		if grab {
			w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		} else {
			w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}
		controls.Grab(grab)
	})
	window.SetScrollCallback(func(w *glfw.Window, dx, dy float64) {
		if handler, ok := demo.(ScrollHandler); ok {
			handler.HandleScroll(dx, dy)
		}
	})

	log.Printf("initializing %q", cfg.Title)
	if err := initialize(ctx, world, demo); err != nil {
		return fmt.Errorf("%s: %w", cfg.Title, err)
	}
	defer demo.Destroy()

	if err := ctx.CheckErrors(); err != nil {
		return fmt.Errorf("%s init: %w", cfg.Title, err)
	}

	for !window.ShouldClose() {
		world.NextFrameGLFW(window)
		glfw.PollEvents()

		start := hrtime.Now()
		if err := demo.Frame(world); err != nil {
			return fmt.Errorf("%s: %w", cfg.Title, err)
		}
		if err := ctx.CheckErrors(); err != nil {
			return fmt.Errorf("%s frame: %w", cfg.Title, err)
		}
		stop := hrtime.Now()

		if cfg.ShowInfo {
			window.SetTitle(fmt.Sprintf("%s\tFrame:\t%v\tDelta:\t%.4fs", cfg.Title, stop-start, world.DeltaTime))
		}

		window.SwapBuffers()
	}

	return nil
}

// initialize runs demo.Init and releases whatever the demo created when it
// fails halfway.
func initialize(ctx *render.Context, world *World, demo Demo) error {
	if err := demo.Init(ctx, world); err != nil {
		demo.Destroy()
		return err
	}
	return nil
}
