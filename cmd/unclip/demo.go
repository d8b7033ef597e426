package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/unclip/pkg/models"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo <out.glb>",
		Short: "Write a furnished demo room to a GLB file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene := models.DemoScene()
			if err := models.SaveGLB(scene, args[0]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, okStyle.Render("wrote "+args[0]))
			fmt.Fprintln(out, field("triangles", fmt.Sprint(scene.TriangleCount())))
			return nil
		},
	}
}
