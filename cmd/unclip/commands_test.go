package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/unclip/pkg/geom"
	"github.com/taigrr/unclip/pkg/unclip"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRepositionInside(t *testing.T) {
	out, _, err := execute(t, "reposition",
		"--eye", "0,0,1", "--target", "0,0,0",
		"--center", "0,0,0", "--diagonal", "4")
	if err != nil {
		t.Fatalf("reposition: %v", err)
	}

	for _, want := range []string{"moved", "0,0,2", "0,0,1", "0,1,0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRepositionOutside(t *testing.T) {
	out, _, err := execute(t, "reposition",
		"--eye", "0,0,10", "--center", "0,0,0", "--diagonal", "4")
	if err != nil {
		t.Fatalf("reposition: %v", err)
	}
	if !strings.Contains(out, "no change") {
		t.Errorf("output = %q, want no change", out)
	}
}

func TestRepositionPerspective(t *testing.T) {
	out, errOut, err := execute(t, "reposition", "--perspective",
		"--eye", "0,0,1", "--center", "0,0,0", "--diagonal", "4")
	if !errors.Is(err, unclip.ErrPerspective) {
		t.Fatalf("err = %v, want ErrPerspective", err)
	}
	if !strings.Contains(errOut, "only functions on parallel projection cameras") {
		t.Errorf("stderr missing refusal message:\n%s", errOut)
	}
	if strings.Contains(out, "moved") {
		t.Error("perspective camera should not be moved")
	}
}

func TestRepositionZeroDirection(t *testing.T) {
	_, _, err := execute(t, "reposition",
		"--eye", "1,1,1", "--target", "1,1,1", "--diagonal", "4")
	if !errors.Is(err, geom.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestRepositionBadFlag(t *testing.T) {
	if _, _, err := execute(t, "reposition", "--eye", "1,2"); err == nil {
		t.Error("expected an error for a two component vector")
	}
}

func TestDemoBoundsRepositionModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.glb")

	out, _, err := execute(t, "demo", path)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if !strings.Contains(out, "room.glb") {
		t.Errorf("demo output = %q", out)
	}

	out, _, err = execute(t, "bounds", path)
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	for _, want := range []string{"-6,0,-4.5", "6,3,4.5", "0,1.5,0"} {
		if !strings.Contains(out, want) {
			t.Errorf("bounds output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "reposition", "--model", path,
		"--eye", "0,1.5,2", "--target", "0,1.5,0")
	if err != nil {
		t.Fatalf("reposition --model: %v", err)
	}
	if !strings.Contains(out, "moved") {
		t.Errorf("camera inside the room should move:\n%s", out)
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "room.glb")
	if _, _, err := execute(t, "demo", model); err != nil {
		t.Fatalf("demo: %v", err)
	}

	tests := []struct {
		name        string
		args        []string
		wantClipped bool
	}{
		{"inside", []string{"--eye", "0,1.5,2", "--target", "0,1.5,0"}, true},
		{"inside unclipped", []string{"--eye", "0,1.5,2", "--target", "0,1.5,0", "--unclip"}, false},
		{"default eye", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "-")+".png")
			args := append([]string{"snapshot", model, png, "--width", "64", "--height", "48"}, tt.args...)

			out, _, err := execute(t, args...)
			if err != nil {
				t.Fatalf("snapshot: %v", err)
			}
			if _, err := os.Stat(png); err != nil {
				t.Fatalf("png not written: %v", err)
			}

			clipped := !strings.Contains(out, field("near clipped", "0")+"\n")
			if clipped != tt.wantClipped {
				t.Errorf("clipped = %v, want %v\n%s", clipped, tt.wantClipped, out)
			}
		})
	}
}

func TestSnapshotPerspectiveUnclip(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "room.glb")
	if _, _, err := execute(t, "demo", model); err != nil {
		t.Fatalf("demo: %v", err)
	}

	_, _, err := execute(t, "snapshot", model, filepath.Join(dir, "p.png"), "--perspective", "--unclip")
	if !errors.Is(err, unclip.ErrPerspective) {
		t.Errorf("err = %v, want ErrPerspective", err)
	}
}

func TestBoundsMissingFile(t *testing.T) {
	if _, _, err := execute(t, "bounds", filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("expected an error for a missing model")
	}
}
