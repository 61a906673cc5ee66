package app

import (
	"context"
	"fmt"

	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/gmath"
	"github.com/vk/geoscript/random"
	"github.com/vk/geoscript/raytrace"
	"github.com/vk/geoscript/socket"
	"github.com/vk/geoscript/tree"
)

// lerp blends two vectors: (1-mix)*v1 + mix*v2.
func lerp(v1, v2 *socket.Vector3, mix *socket.Scalar) (*socket.Vector3, error) {
	inv, err := socket.ScalarBinary(1.0, mix, "SUBTRACT")
	if err != nil {
		return nil, err
	}
	a, err := v1.Scale(inv)
	if err != nil {
		return nil, err
	}
	b, err := v2.Scale(mix)
	if err != nil {
		return nil, err
	}
	return a.Add(b)
}

// buildShowcase populates the engine with the demo trees the CLI
// dumps: a reusable lerp unit, a displacement script calling it, and a
// raycast probe.
func buildShowcase(ctx context.Context, eng engine.Engine) error {
	lib := tree.NewLibrary(eng)
	lerpUnit, err := lib.Function(ctx, lerp)
	if err != nil {
		return err
	}

	if _, err := tree.Build(ctx, eng, "displacement", func(t *tree.Tree) error {
		return buildDisplacement(t, lerpUnit)
	}); err != nil {
		return err
	}

	_, err = tree.Build(ctx, eng, "surface_probe", buildSurfaceProbe)
	return err
}

// buildDisplacement pushes vertices along a blend of the surface
// normal and the vertical axis, modulated by a height wave.
func buildDisplacement(t *tree.Tree, lerpUnit *tree.Tree) error {
	geom, err := t.InputGeometry("geometry", "Geometry to displace.")
	if err != nil {
		return err
	}
	amount, err := t.InputFloat("amount", tree.FloatInput{
		Tooltip: "Strength of the displacement.",
		Default: 0.5,
	})
	if err != nil {
		return err
	}

	pos, err := t.Position()
	if err != nil {
		return err
	}
	normal, err := t.Normal()
	if err != nil {
		return err
	}

	height, err := pos.Z()
	if err != nil {
		return err
	}
	wave, err := gmath.Sin(height)
	if err != nil {
		return err
	}
	mix, err := gmath.Clamp(wave)
	if err != nil {
		return err
	}

	res, err := lerpUnit.Call(normal, [3]float64{0, 0, 1}, mix)
	if err != nil {
		return err
	}
	direction, ok := res.(*socket.Vector3)
	if !ok {
		return fmt.Errorf("lerp returned %T, want a vector", res)
	}

	offset, err := direction.Scale(amount)
	if err != nil {
		return err
	}
	moved, err := geom.MoveVertices(nil, offset, nil)
	if err != nil {
		return err
	}
	merged, err := moved.MergeAllByDistance(0.001, nil)
	if err != nil {
		return err
	}
	return t.OutputGeometry(merged, "geometry", "Displaced geometry.")
}

// buildSurfaceProbe raycasts down onto the target and reports the
// jittered hit distance per element.
func buildSurfaceProbe(t *tree.Tree) error {
	target, err := t.InputGeometry("target", "Geometry the rays are cast onto.")
	if err != nil {
		return err
	}
	seedInput, err := t.InputInt("seed", tree.IntInput{Tooltip: "Jitter seed."})
	if err != nil {
		return err
	}

	pos, err := t.Position()
	if err != nil {
		return err
	}
	down, err := pos.Scale(0.0)
	if err != nil {
		return err
	}
	down, err = down.Add([3]float64{0, 0, -1})
	if err != nil {
		return err
	}

	hit, err := raytrace.Raycast(target, pos, down, 100.0)
	if err != nil {
		return err
	}

	id, err := t.ID()
	if err != nil {
		return err
	}
	jitter, err := random.Float(0.0, 0.01, id, seedInput)
	if err != nil {
		return err
	}
	distance, err := hit.HitDistance().Add(jitter)
	if err != nil {
		return err
	}

	if err := t.OutputBoolean(hit.IsHit(), "hit", "Whether the ray hit the target."); err != nil {
		return err
	}
	return t.OutputFloat(distance, "distance", "Jittered distance to the hit point.")
}
