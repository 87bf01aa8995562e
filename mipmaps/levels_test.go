package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfit/glsteps/render"
)

func TestChecker(t *testing.T) {
	assert.Equal(t, []byte{0, 255, 255, 0}, Checker(2, black, white))
	assert.Equal(t, []byte{
		0, 0, 255, 255,
		0, 0, 255, 255,
		255, 255, 0, 0,
		255, 255, 0, 0,
	}, Checker(4, black, white))
}

func TestCheckerChannels(t *testing.T) {
	pix := Checker(2, blue, rgbWhite)
	assert.Equal(t, []byte{
		0, 0, 255, 255, 255, 255,
		255, 255, 255, 0, 0, 255,
	}, pix)
}

func TestLevelSizes(t *testing.T) {
	for name, test := range map[string]struct {
		levels   [][]byte
		channels int
	}{
		"grey":  {GreyLevels(), 1},
		"color": {ColorLevels(), 3},
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, test.levels, 4)
			for level, pix := range test.levels {
				n := render.LevelSize(LevelSize, level)
				assert.Len(t, pix, n*n*test.channels, "level %d", level)
			}
		})
	}
}

func TestColorLevelsDiffer(t *testing.T) {
	levels := ColorLevels()
	assert.Equal(t, red, levels[0][:3])
	assert.Equal(t, green, levels[1][:3])
	assert.Equal(t, blue, levels[2][:3])
	assert.Equal(t, rgbGrey, levels[3])
}
