package render

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// TextureParams are the sampling parameters of a texture.
// WrapR is only used by cube maps.
type TextureParams struct {
	WrapS     int32
	WrapT     int32
	WrapR     int32
	MinFilter int32
	MagFilter int32
}

// Linear clamps to edge and filters linearly without mipmaps.
var Linear = TextureParams{
	WrapS:     gl.CLAMP_TO_EDGE,
	WrapT:     gl.CLAMP_TO_EDGE,
	WrapR:     gl.CLAMP_TO_EDGE,
	MinFilter: gl.LINEAR,
	MagFilter: gl.LINEAR,
}

// Trilinear repeats and filters through a full mip chain.
var Trilinear = TextureParams{
	WrapS:     gl.REPEAT,
	WrapT:     gl.REPEAT,
	WrapR:     gl.REPEAT,
	MinFilter: gl.LINEAR_MIPMAP_LINEAR,
	MagFilter: gl.LINEAR,
}

// UsesMipmaps reports whether the minification filter samples mip levels.
func UsesMipmaps(minFilter int32) bool {
	switch minFilter {
	case gl.NEAREST_MIPMAP_NEAREST,
		gl.NEAREST_MIPMAP_LINEAR,
		gl.LINEAR_MIPMAP_NEAREST,
		gl.LINEAR_MIPMAP_LINEAR:
		return true
	}
	return false
}

// MipLevels returns the length of a full mip chain for the given size.
func MipLevels(width, height int) int {
	size := width
	if height > size {
		size = height
	}
	if size <= 0 {
		return 0
	}
	return 1 + int(math.Floor(math.Log2(float64(size))))
}

// Formats returns the sized internal format and pixel format for 8-bit data.
func Formats(channels int) (internalFormat int32, format uint32) {
	switch channels {
	case 1:
		return gl.R8, gl.RED
	case 2:
		return gl.RG8, gl.RG
	case 3:
		return gl.RGB8, gl.RGB
	}
	return gl.RGBA8, gl.RGBA
}

// FloatFormats returns the 16-bit float internal format and pixel format.
func FloatFormats(channels int) (internalFormat int32, format uint32) {
	switch channels {
	case 1:
		return gl.R16F, gl.RED
	case 2:
		return gl.RG16F, gl.RG
	case 3:
		return gl.RGB16F, gl.RGB
	}
	return gl.RGBA16F, gl.RGBA
}

type Texture struct {
	Path   string
	Target uint32
	ID     uint32

	Width  int
	Height int
}

func newTexture(target uint32, width, height int, params TextureParams) (*Texture, error) {
	texture := &Texture{
		Target: target,
		Width:  width,
		Height: height,
	}

	gl.GenTextures(1, &texture.ID)
	if texture.ID == 0 {
		return nil, fmt.Errorf("could not create texture")
	}
	gl.BindTexture(target, texture.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexParameteri(target, gl.TEXTURE_WRAP_S, params.WrapS)
	gl.TexParameteri(target, gl.TEXTURE_WRAP_T, params.WrapT)
	if target == gl.TEXTURE_CUBE_MAP {
		gl.TexParameteri(target, gl.TEXTURE_WRAP_R, params.WrapR)
	}
	gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, params.MinFilter)
	gl.TexParameteri(target, gl.TEXTURE_MAG_FILTER, params.MagFilter)

	return texture, nil
}

// LoadTexture2D loads an 8-bit image from disk, flipped so that the first
// row is at the bottom.
func LoadTexture2D(path string, channels int, params TextureParams) (*Texture, error) {
	m, err := DecodeImageFile(path)
	if err != nil {
		return nil, err
	}
	pix, err := Pixels(m, channels, true)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}

	bounds := m.Bounds()
	texture, err := NewTexture2D(pix, bounds.Dx(), bounds.Dy(), channels, params)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	texture.Path = path
	return texture, nil
}

// NewTexture2D uploads tightly packed 8-bit pixels.
func NewTexture2D(pix []byte, width, height, channels int, params TextureParams) (*Texture, error) {
	if len(pix) != width*height*channels {
		return nil, fmt.Errorf("expected %d bytes, got %d", width*height*channels, len(pix))
	}

	texture, err := newTexture(gl.TEXTURE_2D, width, height, params)
	if err != nil {
		return nil, err
	}

	internalFormat, format := Formats(channels)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		int32(width), int32(height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	if UsesMipmaps(params.MinFilter) {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	return texture, nil
}

// NewTexture2DLevels uploads an explicit mip chain, level 0 first.
// Each level is half the size of the previous one.
func NewTexture2DLevels(levels [][]byte, width, height, channels int, params TextureParams) (*Texture, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no mip levels")
	}
	for level, pix := range levels {
		w, h := LevelSize(width, level), LevelSize(height, level)
		if len(pix) != w*h*channels {
			return nil, fmt.Errorf("level %d: expected %d bytes, got %d", level, w*h*channels, len(pix))
		}
	}

	texture, err := newTexture(gl.TEXTURE_2D, width, height, params)
	if err != nil {
		return nil, err
	}

	internalFormat, format := Formats(channels)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, int32(len(levels)-1))
	for level, pix := range levels {
		gl.TexImage2D(gl.TEXTURE_2D, int32(level), internalFormat,
			int32(LevelSize(width, level)), int32(LevelSize(height, level)), 0,
			format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	}
	return texture, nil
}

// LevelSize is the size of a mip level, never smaller than 1.
func LevelSize(size, level int) int {
	size >>= uint(level)
	if size < 1 {
		return 1
	}
	return size
}

// NewEmptyTexture2D allocates a float render target.
func NewEmptyTexture2D(width, height int, internalFormat int32, format uint32, params TextureParams) (*Texture, error) {
	texture, err := newTexture(gl.TEXTURE_2D, width, height, params)
	if err != nil {
		return nil, err
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		int32(width), int32(height), 0,
		format, gl.FLOAT, nil)
	return texture, nil
}

// CubeFaces are the file names of cube map faces in GL face order.
var CubeFaces = [6]string{"right", "left", "top", "bottom", "front", "back"}

// LoadTextureCube loads six face images named after CubeFaces from dir.
func LoadTextureCube(dir, ext string, channels int, params TextureParams) (*Texture, error) {
	var faces [6][]byte
	width, height := 0, 0
	for i, name := range CubeFaces {
		path := filepath.Join(dir, name+"."+ext)
		m, err := DecodeImageFile(path)
		if err != nil {
			return nil, err
		}

		bounds := m.Bounds()
		if i == 0 {
			width, height = bounds.Dx(), bounds.Dy()
		} else if bounds.Dx() != width || bounds.Dy() != height {
			return nil, fmt.Errorf("cube face %q is %dx%d, expected %dx%d", path, bounds.Dx(), bounds.Dy(), width, height)
		}

		faces[i], err = Pixels(m, channels, false)
		if err != nil {
			return nil, fmt.Errorf("cube face %q: %w", path, err)
		}
	}

	texture, err := newTexture(gl.TEXTURE_CUBE_MAP, width, height, params)
	if err != nil {
		return nil, err
	}
	texture.Path = dir

	internalFormat, format := Formats(channels)
	for i, pix := range faces {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, internalFormat,
			int32(width), int32(height), 0,
			format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	}
	if UsesMipmaps(params.MinFilter) {
		gl.GenerateMipmap(gl.TEXTURE_CUBE_MAP)
	}
	return texture, nil
}

// NewEmptyTextureCube16F allocates a half-float cube map render target.
// With mipmaps the full chain is allocated so each level can be rendered to.
func NewEmptyTextureCube16F(size, channels int, params TextureParams, mipmaps bool) (*Texture, error) {
	texture, err := newTexture(gl.TEXTURE_CUBE_MAP, size, size, params)
	if err != nil {
		return nil, err
	}

	levels := 1
	if mipmaps {
		levels = MipLevels(size, size)
	}

	internalFormat, format := FloatFormats(channels)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAX_LEVEL, int32(levels-1))
	for level := 0; level < levels; level++ {
		n := int32(LevelSize(size, level))
		for face := 0; face < 6; face++ {
			gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), int32(level), internalFormat,
				n, n, 0, format, gl.FLOAT, nil)
		}
	}
	return texture, nil
}

// LoadHDR loads a Radiance .hdr image as an RGB half-float texture.
func LoadHDR(path string, params TextureParams) (*Texture, error) {
	img, err := LoadHDRImage(path)
	if err != nil {
		return nil, err
	}
	texture, err := NewHDRTexture(img, params)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	texture.Path = path
	return texture, nil
}

// NewHDRTexture uploads a decoded HDR image.
func NewHDRTexture(img *HDRImage, params TextureParams) (*Texture, error) {
	if len(img.Pix) != 3*img.Width*img.Height || len(img.Pix) == 0 {
		return nil, fmt.Errorf("invalid hdr image %dx%d with %d values", img.Width, img.Height, len(img.Pix))
	}

	texture, err := newTexture(gl.TEXTURE_2D, img.Width, img.Height, params)
	if err != nil {
		return nil, err
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB16F,
		int32(img.Width), int32(img.Height), 0,
		gl.RGB, gl.FLOAT, gl.Ptr(img.Pix))

	if UsesMipmaps(params.MinFilter) {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	return texture, nil
}

// Bind binds the texture to the given texture unit.
func (texture *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(texture.Target, texture.ID)
}

func (texture *Texture) SetParameter(pname uint32, value int32) {
	gl.BindTexture(texture.Target, texture.ID)
	gl.TexParameteri(texture.Target, pname, value)
}

func (texture *Texture) delete() {
	gl.DeleteTextures(1, &texture.ID)
	texture.ID = 0
}

func (texture *Texture) Destroy() {
	if texture.ID != 0 {
		texture.delete()
	}
	texture.Path = ""
}
