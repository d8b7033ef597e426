package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/unclip/pkg/render"
)

func newViewCmd() *cobra.Command {
	var fps int
	bg := &rgbFlag{c: render.RGB(30, 30, 40)}

	cmd := &cobra.Command{
		Use:   "view <model.glb>",
		Short: "View a model and unclip the camera interactively",
		Long: `View a glTF/GLB model as a wireframe in the terminal.

Controls:
  u           Unclip Parallel
  p           Toggle parallel/perspective projection
  W/S/A/D     Move forward/back/left/right
  Arrows      Orbit around the target
  +/-         Zoom
  b           Toggle bounding sphere
  Esc         Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}
			return runViewer(cmd.Context(), args[0], fps, bg.c)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "Target FPS")
	cmd.Flags().Var(bg, "bg", "Background color")
	return cmd
}

func runViewer(ctx context.Context, modelPath string, fps int, bg render.Color) error {
	mesh, err := loadModel(modelPath)
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Mouse wheel zoom
	fmt.Fprint(os.Stdout, "\x1b[?1000h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	v := newViewer(filepath.Base(modelPath), mesh, fps, bg, width, height)
	hud := NewHUD()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				v.mu.Lock()
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				v.resize(width, height)
				v.mu.Unlock()

			case uv.KeyPressEvent:
				if v.handleKey(ev.MatchString) {
					cancel()
					return
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					v.handleKey(keyIs("+"))
				case uv.MouseWheelDown:
					v.handleKey(keyIs("-"))
				}
			}
		}
	}()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1000l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(fps)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

		v.frame()

		v.mu.Lock()
		w, h := width, height
		v.fb.Draw(term, uv.Rect(0, 0, w, h))
		v.mu.Unlock()

		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		hud.UpdateFPS()
		hud.Render(os.Stdout, w, h, v.info())

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
