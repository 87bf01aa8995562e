package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_DestroyedSettersAreNoops(t *testing.T) {
	program := &Program{}
	program.Destroy()

	assert.Equal(t, int32(-1), program.Uniform("u_roughness"))
	assert.NotPanics(t, func() {
		program.SetFloat("u_roughness", 0.5)
		program.SetInt("u_color_sampler", 0)
		program.Destroy()
	})
}
