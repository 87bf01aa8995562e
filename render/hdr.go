package render

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
)

// HDRImage holds linear RGB radiance values, 3 floats per pixel,
// with the first row at the bottom of the image.
type HDRImage struct {
	Width  int
	Height int
	Pix    []float32
}

// LoadHDRImage decodes a Radiance RGBE (.hdr) file.
func LoadHDRImage(path string) (*HDRImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("environment %q not found on disk: %w", path, err)
	}
	defer file.Close()

	img, err := DecodeHDR(file)
	if err != nil {
		return nil, fmt.Errorf("unable to decode environment %q: %w", path, err)
	}
	return img, nil
}

func DecodeHDR(r io.Reader) (*HDRImage, error) {
	m, err := rgbe.Decode(r)
	if err != nil {
		return nil, err
	}
	return HDRFromImage(m), nil
}

// HDRFromImage converts m into a flipped float RGB buffer. Images without
// high dynamic range are normalized into [0, 1].
func HDRFromImage(m image.Image) *HDRImage {
	bounds := m.Bounds()
	img := &HDRImage{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]float32, 0, 3*bounds.Dx()*bounds.Dy()),
	}

	hm, isHDR := m.(hdr.Image)
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isHDR {
				r, g, b, _ := hm.HDRAt(x, y).HDRRGBA()
				img.Pix = append(img.Pix, float32(r), float32(g), float32(b))
				continue
			}
			r, g, b, _ := m.At(x, y).RGBA()
			img.Pix = append(img.Pix,
				float32(r)/0xffff,
				float32(g)/0xffff,
				float32(b)/0xffff)
		}
	}
	return img
}

// At returns the radiance of a pixel, y counted from the bottom row.
func (img *HDRImage) At(x, y int) (r, g, b float32) {
	i := 3 * (y*img.Width + x)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}
