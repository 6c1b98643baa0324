package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

const demoScene = `
width: 32
height: 24
background: "#ffffff"
boxes:
  - rect: {x: 4, y: 4, width: 16, height: 12}
    background: "#ff0000"
    border: {width: 1, color: "#000000", radius: 4}
    shadow: {x: 2, y: 2, blur: 3}
`

func writeScene(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(demoScene), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func swapStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = old })
	return &buf
}

func TestRunWritesImages(t *testing.T) {
	dir, path := writeScene(t)
	logs := swapStderr(t)

	tests := []struct {
		name   string
		decode func(*os.File) (image.Image, error)
	}{
		{"out.bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
		{"out.png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name)
			if err := run(context.Background(), []string{"-scene", path, "-out", out, "-parallel", "2", "-tile", "8"}); err != nil {
				t.Fatalf("run: %v", err)
			}
			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := img.Bounds(); got != image.Rect(0, 0, 32, 24) {
				t.Errorf("bounds = %v", got)
			}
			r, g, b, _ := img.At(10, 10).RGBA()
			if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
				t.Errorf("box pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
			}
		})
	}
	if !strings.Contains(logs.String(), "rendered") {
		t.Errorf("missing summary log line in %q", logs.String())
	}
}

func TestRunLogFile(t *testing.T) {
	dir, path := writeScene(t)
	swapStderr(t)
	logPath := filepath.Join(dir, "boxdemo.log")

	err := run(context.Background(), []string{"-scene", path, "-out", filepath.Join(dir, "a.png"), "-log-file", logPath, "-log-level", "debug"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"msg":"rendered"`)) {
		t.Errorf("log file lacks the summary record: %s", data)
	}
}

func TestRunErrors(t *testing.T) {
	dir, path := writeScene(t)
	swapStderr(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing scene", nil, "missing -scene"},
		{"bad flag", []string{"-nope"}, "not defined"},
		{"no file", []string{"-scene", filepath.Join(dir, "none.yaml")}, "no such file"},
		{"bad extension", []string{"-scene", path, "-out", filepath.Join(dir, "x.gif")}, "unsupported output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run() = %v, want error containing %q", err, tt.want)
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := run(ctx, []string{"-scene", path, "-out", filepath.Join(dir, "c.png")}); err == nil {
		t.Error("run with canceled context succeeded")
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{"debug": "DEBUG", " WARN ": "WARN", "warning": "WARN", "error": "ERROR", "": "INFO", "loud": "INFO"} {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
