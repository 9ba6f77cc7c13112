// Command polytri-genfixture generates a random complex polygon
// (optionally with holes) and prints it as a JSON fixture consumable by
// cmd/polytri-triangulate — for manual exploration and for building new
// regression fixtures.
//
// Grounded on the teacher's cmd/genlinesegments: random-value flags via
// urfave/cli/v3, math/rand/v2 for generation, JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mikenye/polytri/internal/fixture"
	"github.com/mikenye/polytri/vec2"
)

func main() {
	cmd := &cli.Command{
		Name:      "polytri-genfixture",
		Usage:     "Generates a random complex polygon and prints it as a JSON fixture",
		UsageText: "polytri-genfixture --points <value> --holes <value> --hole-points <value> --radius <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "points",
				Usage:    "Number of vertices on the outer ring",
				Value:    8,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v < 3 {
						return fmt.Errorf("points must be at least 3")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "holes",
				Usage:    "Number of hole rings to generate",
				Value:    0,
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v < 0 {
						return fmt.Errorf("holes must not be negative")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "hole-points",
				Usage:    "Number of vertices on each hole ring",
				Value:    5,
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v < 3 {
						return fmt.Errorf("hole-points must be at least 3")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "radius",
				Usage:    "Outer ring's nominal radius",
				Value:    10,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "jitter",
				Usage:    "Fraction of radius by which each vertex's radius is randomly perturbed, in [0, 1)",
				Value:    0.3,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	n := int(cmd.Int("points"))
	numHoles := int(cmd.Int("holes"))
	holePoints := int(cmd.Int("hole-points"))
	radius := cmd.Float("radius")
	jitter := cmd.Float("jitter")

	outer := starRing(0, 0, radius, jitter, n, true)

	var holes [][]vec2.Vec2
	if numHoles > 0 {
		sector := 2 * math.Pi / float64(numHoles)
		holeRadius := radius * 0.18 / math.Max(1, float64(numHoles)*0.5)
		for i := 0; i < numHoles; i++ {
			angle := sector * float64(i)
			cx := radius * 0.45 * math.Cos(angle)
			cy := radius * 0.45 * math.Sin(angle)
			holes = append(holes, starRing(cx, cy, holeRadius, jitter, holePoints, false))
		}
	}

	f := fixture.FromPositions(outer, holes)
	out, err := json.Marshal(f)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// starRing generates a simple, star-shaped ring of n vertices centred
// at (cx, cy): angularly evenly spaced with each vertex's radius jittered
// independently, which keeps the ring simple (non-self-intersecting) no
// matter how large jitter is, since vertex angle order is never
// disturbed. If clockwise is true the ring is reoriented (by reversing
// point order if needed) to wind clockwise in this module's y-down
// convention; otherwise it is reoriented counter-clockwise, matching the
// winding required of outer and hole rings respectively.
func starRing(cx, cy, radius, jitter float64, n int, clockwise bool) []vec2.Vec2 {
	pts := make([]vec2.Vec2, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := radius * (1 - jitter/2 + jitter*rand.Float64())
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		pts[i] = vec2.New(float32(x), float32(y))
	}
	if signedArea2x(pts) > 0 != clockwise {
		reverse(pts)
	}
	return pts
}

// signedArea2x returns twice the signed area of a ring under the
// Shoelace formula, matching [polygon.ComplexPolygon.RingSignedArea2X]'s
// sign convention: positive for clockwise in this module's y-down frame.
func signedArea2x(pts []vec2.Vec2) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	return sum
}

func reverse(pts []vec2.Vec2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
