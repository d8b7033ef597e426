// unclip - move parallel projection cameras out of the scene they clip.
//
// A parallel projection camera whose eye sits inside a model cuts away
// everything behind the eye. unclip backs the camera out along its view
// direction until it sits on the scene's bounding sphere.
//
// Commands:
//
//	view <model.glb>               Interactive wireframe viewer
//	reposition                     Run Unclip Parallel on a camera given by flags
//	bounds <model.glb>             Print the scene bounds of a model
//	snapshot <model.glb> <out.png> Render a wireframe PNG
//	demo <out.glb>                 Write a demo room scene
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/unclip/pkg/unclip"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "unclip",
		Short:         unclip.Description,
		Long:          unclip.Name + " " + unclip.Version + " by " + unclip.Creator + "\n" + unclip.Description,
		Version:       unclip.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newViewCmd(),
		newRepositionCmd(),
		newBoundsCmd(),
		newSnapshotCmd(),
		newDemoCmd(),
	)
	return root
}
