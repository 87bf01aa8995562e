package envmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepOrDestroy_Error(t *testing.T) {
	failed := errors.New("face 3: incomplete framebuffer")

	var env *Environment
	assert.NotPanics(t, func() {
		env, _ = keepOrDestroy(&Environment{Name: "partial"}, failed)
	})
	assert.Nil(t, env)

	_, err := keepOrDestroy(&Environment{}, failed)
	assert.ErrorIs(t, err, failed)
}

func TestKeepOrDestroy_Success(t *testing.T) {
	baked := &Environment{Name: "plaza"}

	env, err := keepOrDestroy(baked, nil)
	assert.NoError(t, err)
	assert.Same(t, baked, env)
}

func TestEnvironmentDestroy_Partial(t *testing.T) {
	assert.NotPanics(t, func() {
		var env *Environment
		env.Destroy()
	})
	assert.NotPanics(t, func() {
		(&Environment{Name: "empty"}).Destroy()
	})
}

func TestBake_NotDecoded(t *testing.T) {
	baker := &Baker{}

	env, err := baker.Bake(Decoded{Source: Source{Name: "plaza"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not decoded")
	assert.Nil(t, env)
}
