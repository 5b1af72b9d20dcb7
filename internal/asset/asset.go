// Package asset decodes the sprite manifest into drawable images.
package asset

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/skyshooter/internal/draw"
)

// BackgroundCount is the number of backdrop variants the game cycles through.
const BackgroundCount = 3

// ErrMissingSprite reports a manifest without a sprite the game needs.
var ErrMissingSprite = errors.New("asset: missing sprite")

//go:embed sprites.yaml
var manifest []byte

// spriteSpec is one sprite as written in the manifest.
type spriteSpec struct {
	Name   string   `yaml:"name"`
	Color  uint8    `yaml:"color"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Art    []string `yaml:"art"`
}

type manifestFile struct {
	Backgrounds []spriteSpec `yaml:"backgrounds"`
	Ship        *spriteSpec  `yaml:"ship"`
	Bullet      *spriteSpec  `yaml:"bullet"`
}

// Repository holds every decoded sprite. It is read-only once loaded.
type Repository struct {
	backgrounds [BackgroundCount]*draw.Image
	ship        *draw.Image
	bullet      *draw.Image
}

// Load decodes the embedded manifest. It returns only when every sprite has
// decoded, so a nil error means all assets are ready.
func Load() (*Repository, error) {
	return Parse(manifest)
}

// Parse decodes a manifest from data.
func Parse(data []byte) (*Repository, error) {
	var f manifestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("asset: parse manifest: %w", err)
	}

	if len(f.Backgrounds) < BackgroundCount {
		return nil, fmt.Errorf("%w: need %d backgrounds, got %d", ErrMissingSprite, BackgroundCount, len(f.Backgrounds))
	}

	repo := &Repository{}
	for i := range repo.backgrounds {
		img, err := decode(&f.Backgrounds[i], fmt.Sprintf("background %d", i))
		if err != nil {
			return nil, err
		}
		repo.backgrounds[i] = img
	}

	var err error
	if repo.ship, err = decode(f.Ship, "ship"); err != nil {
		return nil, err
	}
	if repo.bullet, err = decode(f.Bullet, "bullet"); err != nil {
		return nil, err
	}
	return repo, nil
}

func decode(s *spriteSpec, role string) (*draw.Image, error) {
	if s == nil || len(s.Art) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSprite, role)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("asset: %s %q has non-positive size %gx%g", role, s.Name, s.Width, s.Height)
	}
	return draw.NewImage(s.Name, s.Art, s.Color, s.Width, s.Height), nil
}

// Background returns backdrop i modulo BackgroundCount.
func (r *Repository) Background(i int) *draw.Image {
	i %= BackgroundCount
	if i < 0 {
		i += BackgroundCount
	}
	return r.backgrounds[i]
}

// Backgrounds returns all backdrops in manifest order.
func (r *Repository) Backgrounds() [BackgroundCount]*draw.Image {
	return r.backgrounds
}

// Ship returns the player sprite.
func (r *Repository) Ship() *draw.Image { return r.ship }

// Bullet returns the projectile sprite.
func (r *Repository) Bullet() *draw.Image { return r.bullet }
