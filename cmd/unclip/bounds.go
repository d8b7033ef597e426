package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/taigrr/unclip/pkg/models"
)

func newBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <model.glb>",
		Short: "Print the scene bounds of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := loadModel(args[0])
			if err != nil {
				return err
			}

			box := mesh.Bounds()
			b := meshBounds(mesh)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle.Render(mesh.Name))
			fmt.Fprintln(out, field("vertices ", fmt.Sprint(mesh.VertexCount())))
			fmt.Fprintln(out, field("triangles", fmt.Sprint(mesh.TriangleCount())))
			fmt.Fprintln(out, field("min      ", formatVec(box.Min)))
			fmt.Fprintln(out, field("max      ", formatVec(box.Max)))
			fmt.Fprintln(out, field("center   ", formatVec(b.Center)))
			fmt.Fprintln(out, field("diagonal ", fmt.Sprintf("%g", b.Diagonal)))
			fmt.Fprintln(out, field("radius   ", fmt.Sprintf("%g", b.Sphere().Radius)))
			return nil
		},
	}
}

func loadModel(path string) (*models.Mesh, error) {
	mesh, err := models.LoadGLB(path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", filepath.Base(path), err)
	}
	if mesh.VertexCount() == 0 {
		return nil, fmt.Errorf("load model %s: no triangle geometry", filepath.Base(path))
	}
	return mesh, nil
}
