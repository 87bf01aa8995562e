package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMipLevels(t *testing.T) {
	tests := []struct {
		Width, Height int
		Expected      int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{8, 8, 4},
		{128, 128, 8},
		{512, 256, 10},
		{300, 700, 10},
		{0, 0, 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.Expected, MipLevels(test.Width, test.Height), "%dx%d", test.Width, test.Height)
	}
}

func TestLevelSize(t *testing.T) {
	assert.Equal(t, 128, LevelSize(128, 0))
	assert.Equal(t, 16, LevelSize(128, 3))
	assert.Equal(t, 1, LevelSize(128, 7))
	assert.Equal(t, 1, LevelSize(128, 12))
}

func TestUsesMipmaps(t *testing.T) {
	assert.True(t, UsesMipmaps(gl.LINEAR_MIPMAP_LINEAR))
	assert.True(t, UsesMipmaps(gl.NEAREST_MIPMAP_NEAREST))
	assert.False(t, UsesMipmaps(gl.LINEAR))
	assert.False(t, UsesMipmaps(gl.NEAREST))
}

func TestFormats(t *testing.T) {
	internal, format := Formats(1)
	assert.Equal(t, int32(gl.R8), internal)
	assert.Equal(t, uint32(gl.RED), format)

	internal, format = Formats(3)
	assert.Equal(t, int32(gl.RGB8), internal)
	assert.Equal(t, uint32(gl.RGB), format)

	internal, format = FloatFormats(2)
	assert.Equal(t, int32(gl.RG16F), internal)
	assert.Equal(t, uint32(gl.RG), format)
}

// checker returns a 2x2 image: top row red, green; bottom row blue, white.
func checker() image.Image {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	m.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	m.Set(1, 0, color.NRGBA{0, 255, 0, 128})
	m.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	m.Set(1, 1, color.NRGBA{255, 255, 255, 255})
	return m
}

func TestPixels_Flip(t *testing.T) {
	pix, err := Pixels(checker(), 4, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0, 0, 255, 255, 255, 255, 255, 255,
		255, 0, 0, 255, 0, 255, 0, 128,
	}, pix)

	pix, err = Pixels(checker(), 3, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}, pix)
}

func TestPixels_Grey(t *testing.T) {
	pix, err := Pixels(checker(), 1, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{76, 149, 28, 255}, pix)

	pix, err = Pixels(checker(), 2, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{76, 255, 149, 128, 28, 255, 255, 255}, pix)
}

func TestPixels_OffsetBounds(t *testing.T) {
	m := image.NewGray(image.Rect(3, 5, 5, 6))
	m.SetGray(3, 5, color.Gray{10})
	m.SetGray(4, 5, color.Gray{200})

	pix, err := Pixels(m, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 200}, pix)
}

func TestPixels_InvalidChannels(t *testing.T) {
	_, err := Pixels(checker(), 5, false)
	assert.Error(t, err)
}

func TestHDRFromImage(t *testing.T) {
	img := HDRFromImage(checker())

	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	require.Len(t, img.Pix, 12)

	// row 0 is the bottom of the source image
	r, g, b := img.At(0, 0)
	assert.Equal(t, [3]float32{0, 0, 1}, [3]float32{r, g, b})
	r, g, b = img.At(1, 1)
	assert.InDelta(t, 0, r, 1e-6)
	assert.InDelta(t, 128.0/255.0, g, 1e-2)
	assert.InDelta(t, 0, b, 1e-6)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "GL_INVALID_OPERATION", ErrorName(gl.INVALID_OPERATION))
	assert.Equal(t, "GL_ERROR(0x1234)", ErrorName(0x1234))

	assert.Equal(t, "fragment", StageName(gl.FRAGMENT_SHADER))
	assert.Equal(t, "tessellation control", StageName(gl.TESS_CONTROL_SHADER))

	assert.Equal(t, "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT", FramebufferStatusName(gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT))
}

func TestStatusError(t *testing.T) {
	assert.NoError(t, statusError(gl.FRAMEBUFFER_COMPLETE))

	err := statusError(gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT)
	assert.ErrorIs(t, err, ErrIncompleteFramebuffer)
	assert.Contains(t, err.Error(), "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT")
}
