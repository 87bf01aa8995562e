package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type Renderbuffer struct {
	ID             uint32
	InternalFormat uint32
	Width          int
	Height         int
}

// NewRenderbuffer allocates renderbuffer storage, usually a depth buffer.
func NewRenderbuffer(internalFormat uint32, width, height int) (*Renderbuffer, error) {
	rb := &Renderbuffer{
		InternalFormat: internalFormat,
		Width:          width,
		Height:         height,
	}

	gl.GenRenderbuffers(1, &rb.ID)
	if rb.ID == 0 {
		return nil, fmt.Errorf("could not create renderbuffer")
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, rb.ID)
	gl.RenderbufferStorage(gl.RENDERBUFFER, internalFormat, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	return rb, nil
}

func (rb *Renderbuffer) Destroy() {
	if rb.ID != 0 {
		gl.DeleteRenderbuffers(1, &rb.ID)
		rb.ID = 0
	}
}

// Framebuffer is an off-screen render target. Attach methods bind it.
type Framebuffer struct {
	ID uint32
}

func NewFramebuffer() (*Framebuffer, error) {
	fb := &Framebuffer{}
	gl.GenFramebuffers(1, &fb.ID)
	if fb.ID == 0 {
		return nil, fmt.Errorf("could not create framebuffer")
	}
	return fb, nil
}

// BindDefault binds the window framebuffer.
func BindDefault() { gl.BindFramebuffer(gl.FRAMEBUFFER, 0) }

func (fb *Framebuffer) Bind() { gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID) }

func (fb *Framebuffer) AttachTexture(attachment uint32, texture *Texture, level int) {
	fb.Bind()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, texture.ID, int32(level))
}

func (fb *Framebuffer) DetachTexture(attachment uint32) {
	fb.Bind()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, 0, 0)
}

// AttachCubeMapFace attaches one face (0..5, +X -X +Y -Y +Z -Z) of a cube map level.
func (fb *Framebuffer) AttachCubeMapFace(attachment uint32, texture *Texture, level, face int) {
	fb.Bind()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment,
		gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), texture.ID, int32(level))
}

func (fb *Framebuffer) DetachCubeMapFace(attachment uint32) {
	fb.Bind()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_CUBE_MAP_POSITIVE_X, 0, 0)
}

func (fb *Framebuffer) AttachRenderbuffer(attachment uint32, rb *Renderbuffer) {
	fb.Bind()
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, rb.ID)
}

func (fb *Framebuffer) DetachRenderbuffer(attachment uint32) {
	fb.Bind()
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, 0)
}

// CheckStatus binds the framebuffer and verifies it is complete.
func (fb *Framebuffer) CheckStatus() error {
	fb.Bind()
	return statusError(gl.CheckFramebufferStatus(gl.FRAMEBUFFER))
}

// ErrIncompleteFramebuffer is wrapped by CheckStatus failures.
var ErrIncompleteFramebuffer = errors.New("incomplete framebuffer")

func statusError(status uint32) error {
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%w: %s", ErrIncompleteFramebuffer, FramebufferStatusName(status))
	}
	return nil
}

func (fb *Framebuffer) Destroy() {
	if fb.ID != 0 {
		gl.DeleteFramebuffers(1, &fb.ID)
		fb.ID = 0
	}
}

func FramebufferStatusName(status uint32) string {
	switch status {
	case gl.FRAMEBUFFER_COMPLETE:
		return "GL_FRAMEBUFFER_COMPLETE"
	case gl.FRAMEBUFFER_UNDEFINED:
		return "GL_FRAMEBUFFER_UNDEFINED"
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "GL_FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER"
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "GL_FRAMEBUFFER_INCOMPLETE_READ_BUFFER"
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return "GL_FRAMEBUFFER_UNSUPPORTED"
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "GL_FRAMEBUFFER_INCOMPLETE_MULTISAMPLE"
	case gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return "GL_FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS"
	}
	return fmt.Sprintf("GL_FRAMEBUFFER_STATUS(0x%X)", status)
}
