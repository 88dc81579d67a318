package main

import (
	"path/filepath"
	"testing"
)

func TestGetExportPath(t *testing.T) {
	c := &Config{}
	if got := c.GetExportPath("Main.png"); got != "Main.png" {
		t.Errorf("no export dir: got %q, want Main.png", got)
	}

	dir := t.TempDir()
	c.ExportDirectory = dir
	want := filepath.Join(dir, "Main.png")
	if got := c.GetExportPath("Main.png"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
