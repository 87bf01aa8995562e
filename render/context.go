// Package render wraps the OpenGL resources used by the demos: shader
// programs, packed static geometry, textures, cube maps, framebuffers and
// renderbuffers.
//
// All functions must be called from the goroutine that owns the GL context.
package render

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Context holds information about the current GL context.
type Context struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// Init loads the GL function pointers for the current context.
func (ctx *Context) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}

	ctx.Vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	ctx.Renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	ctx.Version = gl.GoStr(gl.GetString(gl.VERSION))
	ctx.GLSL = gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))

	log.Println("Vendor:  ", ctx.Vendor)
	log.Println("Renderer:", ctx.Renderer)
	log.Println("OpenGL:  ", ctx.Version)
	log.Println("GLSL:    ", ctx.GLSL)

	return nil
}

func (ctx *Context) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (ctx *Context) SetLineWidth(width float32) { gl.LineWidth(width) }

func (ctx *Context) Enable(capability uint32)  { gl.Enable(capability) }
func (ctx *Context) Disable(capability uint32) { gl.Disable(capability) }

// CheckErrors drains the GL error queue.
func (ctx *Context) CheckErrors() error {
	var names []string
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		names = append(names, ErrorName(code))
		if len(names) > 32 {
			// a lost context may keep reporting forever
			break
		}
	}

	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("gl: %s", strings.Join(names, ", "))
}

func ErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return fmt.Sprintf("GL_ERROR(0x%X)", code)
}
