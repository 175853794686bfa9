package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/log"
)

func TestApp_RenderBuiltin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	err := newApp().Run([]string{"whitted", "render", "--builtin", "reflection",
		"--width", "24", "--height", "16", "--workers", "3", "--out", out})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Expected frame to be written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 16 {
		t.Errorf("Expected 24x16 frame, got %v", img.Bounds())
	}
}

func TestApp_RenderSceneFile(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "scene.txt")
	content := `# one glass sphere over the waves background
NEAR 1
LEFT -1
RIGHT 1
BOTTOM -1
TOP 1
RES 8 8
SPHERE 0 0 -4 1 1 1 0.9 0.9 1 0.1 0.2 0.5 20 0 0.8 1.5
LIGHT 2 2 0 1 1 1
BACK 0.2 0.2 0.3
AMBIENT 0.5 0.5 0.5
`
	if err := os.WriteFile(sceneFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	out := filepath.Join(dir, "frame.png")
	err := newApp().Run([]string{"whitted", "-v", "render", "--scene", sceneFile,
		"--background", "waves", "--refraction", "entry-exit", "--eye", "0,0,1", "--out", out})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected frame to be written: %v", err)
	}
}

func TestApp_RenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"no scene", []string{"render"}},
		{"both sources", []string{"render", "--builtin", "spheres", "--scene", "x.txt"}},
		{"unknown builtin", []string{"render", "--builtin", "teapot"}},
		{"missing file", []string{"render", "--scene", filepath.Join(dir, "missing.txt")}},
		{"unknown background", []string{"render", "--builtin", "spheres", "--background", "plasma"}},
		{"unknown refraction", []string{"render", "--builtin", "spheres", "--refraction", "snell"}},
		{"unknown miss", []string{"render", "--builtin", "spheres", "--miss", "void"}},
		{"bad eye", []string{"render", "--builtin", "spheres", "--eye", "1,2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"whitted"}, tt.args...)
			args = append(args, "--out", filepath.Join(dir, "frame.png"))
			if err := newApp().Run(args); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestApp_List(t *testing.T) {
	for _, sub := range []string{"scenes", "backgrounds"} {
		if err := newApp().Run([]string{"whitted", "list", sub}); err != nil {
			t.Errorf("list %s: unexpected error: %v", sub, err)
		}
	}
}

func TestRun_ReportsErrors(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	defer log.SetSink(os.Stdout)

	missing := filepath.Join(t.TempDir(), "missing.txt")
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"unknown builtin", []string{"render", "--builtin", "teapot"}, "teapot"},
		{"missing scene file", []string{"render", "--scene", missing}, "missing.txt"},
		{"unknown refraction", []string{"render", "--builtin", "spheres", "--refraction", "snell"}, "snell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			if code := run(append([]string{"whitted"}, tt.args...)); code != 1 {
				t.Errorf("Expected exit code 1, got %d", code)
			}
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected %q in log output, got:\n%s", tt.expected, buf.String())
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	if code := run([]string{"whitted", "--version"}); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
}
