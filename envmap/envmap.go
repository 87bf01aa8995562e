// Package envmap precomputes the textures used for image-based lighting:
// an environment cube map projected from an equirectangular HDR image,
// a diffuse irradiance cube map, a roughness-prefiltered specular cube map
// and the split-sum BRDF lookup table.
//
// Everything is recomputed on every start; nothing is cached on disk.
package envmap

import (
	"fmt"

	m "github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"github.com/adinfit/glsteps/render"
)

const (
	EnvironmentSize = 512
	IrradianceSize  = 32
	SpecularSize    = 128
	BRDFLUTSize     = 512
)

// CaptureProjection covers exactly one cube face.
func CaptureProjection() m.Mat4 {
	return m.Perspective(m.DegToRad(90), 1, 0.1, 10)
}

// CaptureViews look from the origin through the faces +X, -X, +Y, -Y, +Z, -Z.
func CaptureViews() [6]m.Mat4 {
	origin := m.Vec3{0, 0, 0}
	return [6]m.Mat4{
		m.LookAtV(origin, m.Vec3{1, 0, 0}, m.Vec3{0, -1, 0}),
		m.LookAtV(origin, m.Vec3{-1, 0, 0}, m.Vec3{0, -1, 0}),
		m.LookAtV(origin, m.Vec3{0, 1, 0}, m.Vec3{0, 0, 1}),
		m.LookAtV(origin, m.Vec3{0, -1, 0}, m.Vec3{0, 0, -1}),
		m.LookAtV(origin, m.Vec3{0, 0, 1}, m.Vec3{0, -1, 0}),
		m.LookAtV(origin, m.Vec3{0, 0, -1}, m.Vec3{0, -1, 0}),
	}
}

// SpecularLevels is the number of prefiltered mip levels for a cube of size.
func SpecularLevels(size int) int { return render.MipLevels(size, size) }

// LevelRoughness maps mip levels linearly onto roughness [0, 1].
func LevelRoughness(level, levels int) float32 {
	if levels <= 1 {
		return 0
	}
	return float32(level) / float32(levels-1)
}

// Source names an equirectangular environment and, optionally, an
// already convolved irradiance image of it.
type Source struct {
	Name           string
	Path           string
	IrradiancePath string
}

// Decoded is a source with its images loaded into memory.
type Decoded struct {
	Source
	Radiance   *render.HDRImage
	Irradiance *render.HDRImage
}

// DecodeSources decodes all sources concurrently.
// The result is in the same order as sources.
func DecodeSources(sources []Source) ([]Decoded, error) {
	return decodeSources(sources, render.LoadHDRImage)
}

func decodeSources(sources []Source, load func(path string) (*render.HDRImage, error)) ([]Decoded, error) {
	decoded := make([]Decoded, len(sources))

	var group errgroup.Group
	for i, source := range sources {
		i, source := i, source
		decoded[i].Source = source

		group.Go(func() error {
			img, err := load(source.Path)
			if err != nil {
				return fmt.Errorf("environment %q: %w", source.Name, err)
			}
			decoded[i].Radiance = img
			return nil
		})

		if source.IrradiancePath != "" {
			group.Go(func() error {
				img, err := load(source.IrradiancePath)
				if err != nil {
					return fmt.Errorf("environment %q irradiance: %w", source.Name, err)
				}
				decoded[i].Irradiance = img
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return decoded, nil
}
