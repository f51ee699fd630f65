package config

import (
	"path/filepath"
	"sync"
	"testing"
)

// resetForTest points the loader at a temp dir and clears the singleton.
func resetForTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configDir = func() (string, error) { return dir, nil }
	current = nil
	currentOnce = sync.Once{}
	t.Cleanup(func() {
		configDir = defaultConfigDir
		current = nil
		currentOnce = sync.Once{}
	})
	return dir
}

func TestDefaultsWhenNoFile(t *testing.T) {
	resetForTest(t)

	p := Current()
	if p.TileSize != 0 {
		t.Errorf("expected zero tile size default, got %d", p.TileSize)
	}
	if p.Renderer != "" {
		t.Errorf("expected empty renderer default, got %q", p.Renderer)
	}
}

func TestSetTileSizeRoundTrip(t *testing.T) {
	dir := resetForTest(t)

	if err := Current().SetTileSize(32); err != nil {
		t.Fatalf("SetTileSize: %v", err)
	}

	// Force a reload from disk.
	current = nil
	currentOnce = sync.Once{}

	p := Current()
	if p.TileSize != 32 {
		t.Errorf("expected tile size 32 after reload, got %d", p.TileSize)
	}
	if p.path != filepath.Join(dir, preferencesFilename) {
		t.Errorf("unexpected preferences path %q", p.path)
	}
}

func TestSetRendererPreservesOtherFields(t *testing.T) {
	resetForTest(t)

	if err := Current().SetTileSize(28); err != nil {
		t.Fatalf("SetTileSize: %v", err)
	}
	if err := Current().SetRenderer("ebiten"); err != nil {
		t.Fatalf("SetRenderer: %v", err)
	}

	current = nil
	currentOnce = sync.Once{}

	p := Current()
	if p.TileSize != 28 || p.Renderer != "ebiten" {
		t.Errorf("expected {28 ebiten}, got {%d %s}", p.TileSize, p.Renderer)
	}
}
