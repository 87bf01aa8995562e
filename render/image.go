package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// DecodeImageFile decodes any registered image format.
func DecodeImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", path, err)
	}
	defer file.Close()

	m, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unable to decode texture %q: %w", path, err)
	}
	return m, nil
}

// Pixels converts m into tightly packed 8-bit rows with the requested
// number of channels: 1 grey, 2 grey+alpha, 3 RGB, 4 RGBA.
//
// When flip is set the first row of the result is the bottom row of the
// image, matching the GL texture coordinate origin.
func Pixels(m image.Image, channels int, flip bool) ([]byte, error) {
	if channels < 1 || channels > 4 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}

	bounds := m.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), m, bounds.Min, draw.Src)

	width, height := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 0, width*height*channels)
	for row := 0; row < height; row++ {
		y := row
		if flip {
			y = height - 1 - row
		}
		line := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*width]
		for x := 0; x < width; x++ {
			r, g, b, a := line[4*x], line[4*x+1], line[4*x+2], line[4*x+3]
			switch channels {
			case 1:
				pix = append(pix, luminance(r, g, b))
			case 2:
				pix = append(pix, luminance(r, g, b), a)
			case 3:
				pix = append(pix, r, g, b)
			case 4:
				pix = append(pix, r, g, b, a)
			}
		}
	}
	return pix, nil
}

func luminance(r, g, b uint8) uint8 {
	return uint8((uint32(r)*77 + uint32(g)*150 + uint32(b)*29) >> 8)
}
