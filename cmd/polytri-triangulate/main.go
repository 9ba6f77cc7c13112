// Command polytri-triangulate reads a complex polygon from a JSON
// fixture file and prints the resulting triangle indices.
//
// Grounded on the teacher's cmd/genlinesegments: a thin urfave/cli/v3
// front end whose Action does nothing but wire fixture I/O to the
// library's public API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mikenye/polytri"
	"github.com/mikenye/polytri/internal/fixture"
	"github.com/mikenye/polytri/triangulate"
)

func main() {
	cmd := &cli.Command{
		Name:      "polytri-triangulate",
		Usage:     "Triangulates a complex polygon read from a JSON fixture file",
		UsageText: "polytri-triangulate --in <path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Usage:    "Path to a JSON polygon fixture (see internal/fixture.Polygon)",
				Aliases:  []string{"i"},
				OnlyOnce: true,
				Required: true,
			},
		},
		HideVersion: true,
		Action:      run,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	data, err := os.ReadFile(cmd.String("in"))
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}

	var f fixture.Polygon
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing fixture: %w", err)
	}

	poly, pos, err := f.Build()
	if err != nil {
		return fmt.Errorf("building polygon: %w", err)
	}

	pipeline := polytri.NewPipeline()
	sink := triangulate.NewSliceSink(3 * (poly.NumVertices() - 2))
	if err := pipeline.Triangulate(poly, pos, sink); err != nil {
		return fmt.Errorf("triangulating: %w", err)
	}

	triangles := make([][3]int32, 0, len(sink.Indices)/3)
	for i := 0; i < len(sink.Indices); i += 3 {
		triangles = append(triangles, [3]int32{
			int32(sink.Indices[i]),
			int32(sink.Indices[i+1]),
			int32(sink.Indices[i+2]),
		})
	}

	out, err := json.Marshal(triangles)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
