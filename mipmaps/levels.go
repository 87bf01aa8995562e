package main

import "github.com/adinfit/glsteps/render"

// LevelSize is the edge length of the base level of the checker textures.
const LevelSize = 8

var (
	black = []byte{0}
	white = []byte{255}
	grey  = []byte{127}

	red      = []byte{200, 0, 0}
	green    = []byte{0, 200, 0}
	blue     = []byte{0, 0, 255}
	rgbWhite = []byte{255, 255, 255}
	rgbGrey  = []byte{127, 127, 127}
)

// Checker returns a size x size image split into four quadrants, a in the
// first and last quadrant and b in the other two.
func Checker(size int, a, b []byte) []byte {
	channels := len(a)
	half := size / 2
	pix := make([]byte, 0, size*size*channels)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x < half) == (y < half) {
				pix = append(pix, a...)
			} else {
				pix = append(pix, b...)
			}
		}
	}
	return pix
}

// GreyLevels is the single channel mip chain: black and white checkers
// that end in a uniform grey level.
func GreyLevels() [][]byte {
	return [][]byte{
		Checker(render.LevelSize(LevelSize, 0), black, white),
		Checker(render.LevelSize(LevelSize, 1), black, white),
		Checker(render.LevelSize(LevelSize, 2), black, white),
		grey,
	}
}

// ColorLevels gives every mip level its own color so the selected level is
// visible on screen.
func ColorLevels() [][]byte {
	return [][]byte{
		Checker(render.LevelSize(LevelSize, 0), red, rgbWhite),
		Checker(render.LevelSize(LevelSize, 1), green, rgbWhite),
		Checker(render.LevelSize(LevelSize, 2), blue, rgbWhite),
		rgbGrey,
	}
}
