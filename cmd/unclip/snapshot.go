package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/taigrr/unclip/pkg/math3d"
	"github.com/taigrr/unclip/pkg/render"
	"github.com/taigrr/unclip/pkg/unclip"
)

type snapshotOptions struct {
	eye, target, up *vecFlag
	width, height   int
	orthoHeight     float64
	perspective     bool
	unclip          bool
	sphere          bool
	bg              *rgbFlag
}

func newSnapshotCmd() *cobra.Command {
	opts := snapshotOptions{
		eye:    newVecFlag(math3d.Zero3()),
		target: newVecFlag(math3d.Zero3()),
		up:     newVecFlag(math3d.Up()),
		bg:     &rgbFlag{c: render.RGB(30, 30, 40)},
	}

	cmd := &cobra.Command{
		Use:   "snapshot <model.glb> <out.png>",
		Short: "Render a wireframe snapshot of a model to PNG",
		Long: `Render a wireframe snapshot of a model to PNG.

Without --eye the camera looks at the scene center from one diagonal away
along +Z. With --unclip the camera is moved back out of the scene first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, args[0], args[1], opts)
		},
	}

	f := cmd.Flags()
	f.Var(opts.eye, "eye", "Camera eye (default: outside the scene on +Z)")
	f.Var(opts.target, "target", "Camera target (default: scene center)")
	f.Var(opts.up, "up", "Camera up vector")
	f.IntVar(&opts.width, "width", 320, "Image width in pixels")
	f.IntVar(&opts.height, "height", 240, "Image height in pixels")
	f.Float64Var(&opts.orthoHeight, "ortho-height", 0, "Parallel view height (default: scene diagonal)")
	f.BoolVar(&opts.perspective, "perspective", false, "Use a perspective camera")
	f.BoolVar(&opts.unclip, "unclip", false, "Run "+unclip.Name+" before rendering")
	f.BoolVar(&opts.sphere, "sphere", false, "Draw the bounding sphere")
	f.Var(opts.bg, "bg", "Background color")
	return cmd
}

func runSnapshot(cmd *cobra.Command, modelPath, outPath string, opts snapshotOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", opts.width, opts.height)
	}

	mesh, err := loadModel(modelPath)
	if err != nil {
		return err
	}
	bounds := meshBounds(mesh)

	target := bounds.Center
	if opts.target.set {
		target = opts.target.v
	}
	eye := bounds.Center.Add(math3d.V3(0, 0, bounds.Diagonal))
	if opts.eye.set {
		eye = opts.eye.v
	}

	cam := render.NewCamera()
	cam.Set(eye, target, opts.up.v)
	cam.SetAspectRatio(float64(opts.width) / float64(opts.height))
	cam.SetClipPlanes(0.1, 10*bounds.Diagonal+100)
	orthoHeight := opts.orthoHeight
	if orthoHeight <= 0 {
		orthoHeight = math.Max(bounds.Diagonal, 1)
	}
	cam.SetOrthoHeight(orthoHeight)
	if opts.perspective {
		cam.SetProjection(render.Perspective)
	}

	out := cmd.OutOrStdout()

	if opts.unclip {
		host := &sceneHost{
			camera: cam,
			bounds: bounds,
			onMessage: func(msg string) {
				fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(msg))
			},
		}
		moved, err := unclip.Unclip(host)
		if errors.Is(err, unclip.ErrPerspective) {
			return err
		}
		if err != nil {
			return fmt.Errorf("unclip: %w", err)
		}
		if moved {
			fmt.Fprintln(out, okStyle.Render("unclipped"))
			printPose(cmd, cam)
		}
	}

	fb := render.NewFramebuffer(opts.width, opts.height)
	fb.Clear(opts.bg.c)

	wire := render.NewWireframe(cam, fb)
	wire.DrawMesh(mesh, meshColor)
	stats := wire.Stats
	if opts.sphere {
		s := bounds.Sphere()
		wire.DrawSphere(s.Center, s.Radius, 64, sphereColor)
	}

	if err := fb.SavePNG(outPath); err != nil {
		return err
	}

	fmt.Fprintln(out, headingStyle.Render(outPath))
	fmt.Fprintln(out, field("projection  ", cam.Projection.String()))
	fmt.Fprintln(out, field("edges drawn ", fmt.Sprintf("%d/%d", stats.Drawn, stats.Segments)))
	fmt.Fprintln(out, field("near clipped", fmt.Sprint(stats.NearClipped)))
	return nil
}
