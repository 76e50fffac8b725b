package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppCommands(t *testing.T) {
	app := newApp()
	if app.Command("render") == nil {
		t.Error("Expected a render command")
	}
	if app.Command("scenes") == nil {
		t.Error("Expected a scenes command")
	}
}

func TestRenderEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("end-to-end render")
	}

	out := filepath.Join(t.TempDir(), "tiny.png")
	err := newApp().Run([]string{
		"bandtracer", "render",
		"--scene", "cornell",
		"--width", "16", "--height", "12",
		"--spp", "2", "--depth", "3", "--threads", "2",
		"--out", out,
	})
	if err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty output image")
	}
}
