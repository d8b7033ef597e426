package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/unclip/pkg/math3d"
	"github.com/taigrr/unclip/pkg/render"
	"github.com/taigrr/unclip/pkg/unclip"
)

func newRepositionCmd() *cobra.Command {
	var (
		eye         = newVecFlag(math3d.V3(0, 0, 10))
		target      = newVecFlag(math3d.Zero3())
		up          = newVecFlag(math3d.Up())
		center      = newVecFlag(math3d.Zero3())
		diagonal    float64
		modelPath   string
		perspective bool
	)

	cmd := &cobra.Command{
		Use:   "reposition",
		Short: "Run " + unclip.Name + " on a camera given by flags",
		Long: `Run ` + unclip.Name + ` on a camera given by flags and print the new pose.

The scene bounds come from --center and --diagonal, or from a model with
--model. A camera whose eye is outside the bounds is left unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cam := render.NewCamera()
			cam.Set(eye.v, target.v, up.v)
			if perspective {
				cam.SetProjection(render.Perspective)
			}

			bounds := unclip.Bounds{Center: center.v, Diagonal: diagonal}
			if modelPath != "" {
				mesh, err := loadModel(modelPath)
				if err != nil {
					return err
				}
				bounds = meshBounds(mesh)
			}

			host := &sceneHost{
				camera: cam,
				bounds: bounds,
				onMessage: func(msg string) {
					fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(msg))
				},
			}

			moved, err := unclip.Unclip(host)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !moved {
				fmt.Fprintln(out, okStyle.Render("no change")+": the eye is outside the scene bounds")
				return nil
			}
			fmt.Fprintln(out, headingStyle.Render("moved"))
			printPose(cmd, cam)
			return nil
		},
	}

	cmd.Flags().Var(eye, "eye", "Camera eye")
	cmd.Flags().Var(target, "target", "Camera target")
	cmd.Flags().Var(up, "up", "Camera up vector")
	cmd.Flags().Var(center, "center", "Scene bounds center")
	cmd.Flags().Float64Var(&diagonal, "diagonal", 0, "Scene bounding box diagonal")
	cmd.Flags().StringVar(&modelPath, "model", "", "Take the scene bounds from a GLB model")
	cmd.Flags().BoolVar(&perspective, "perspective", false, "Use a perspective camera")
	cmd.MarkFlagsMutuallyExclusive("model", "center")
	cmd.MarkFlagsMutuallyExclusive("model", "diagonal")
	return cmd
}

func printPose(cmd *cobra.Command, cam *render.Camera) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, field("eye   ", formatVec(cam.Eye())))
	fmt.Fprintln(out, field("target", formatVec(cam.Target())))
	fmt.Fprintln(out, field("up    ", formatVec(cam.Up())))
}
