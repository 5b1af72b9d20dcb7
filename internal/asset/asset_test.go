package asset

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedManifest(t *testing.T) {
	repo, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for i := 0; i < BackgroundCount; i++ {
		bg := repo.Background(i)
		if bg == nil {
			t.Fatalf("background %d is nil", i)
		}
		if bg.Width() != 600 || bg.Height() != 385 {
			t.Errorf("background %d: expected 600x385, got %gx%g", i, bg.Width(), bg.Height())
		}
	}
	if repo.Ship().Width() != 60 || repo.Ship().Height() != 40 {
		t.Errorf("Expected ship 60x40, got %gx%g", repo.Ship().Width(), repo.Ship().Height())
	}
	if repo.Bullet().Width() != 60 || repo.Bullet().Height() != 30 {
		t.Errorf("Expected bullet 60x30, got %gx%g", repo.Bullet().Width(), repo.Bullet().Height())
	}
}

func TestBackgroundIndexWraps(t *testing.T) {
	repo, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if repo.Background(4) != repo.Background(1) {
		t.Error("Expected index 4 to select background 1")
	}
	if repo.Background(-1) != repo.Background(2) {
		t.Error("Expected index -1 to select background 2")
	}
}

func TestParseMissingSprites(t *testing.T) {
	data := []byte(`
backgrounds:
  - {name: a, color: 1, width: 10, height: 10, art: ["x"]}
  - {name: b, color: 1, width: 10, height: 10, art: ["x"]}
  - {name: c, color: 1, width: 10, height: 10, art: ["x"]}
ship: {name: s, color: 1, width: 10, height: 10, art: ["s"]}
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrMissingSprite) {
		t.Fatalf("Expected ErrMissingSprite for absent bullet, got %v", err)
	}

	_, err = Parse([]byte("backgrounds: []\n"))
	if !errors.Is(err, ErrMissingSprite) {
		t.Fatalf("Expected ErrMissingSprite for absent backgrounds, got %v", err)
	}
}

func TestParseRejectsBadSize(t *testing.T) {
	data := []byte(`
backgrounds:
  - {name: a, color: 1, width: 10, height: 10, art: ["x"]}
  - {name: b, color: 1, width: 10, height: 10, art: ["x"]}
  - {name: c, color: 1, width: 10, height: 10, art: ["x"]}
ship: {name: s, color: 1, width: 0, height: 10, art: ["s"]}
bullet: {name: b, color: 1, width: 10, height: 10, art: ["b"]}
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("Expected error for zero-width ship")
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse([]byte("backgrounds: [")); err == nil {
		t.Fatal("Expected YAML syntax error")
	}
}
