package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/echoflaresat/spheretracer/texture"
	"github.com/echoflaresat/spheretracer/vectors"
)

var ErrInvalidScene = errors.New("invalid scene")

// SphereCfg describes one sphere. Texture is resolved relative to the scene file.
type SphereCfg struct {
	Center       vectors.Vec3 `json:"center"`
	Radius       float64      `json:"radius"`
	Surface      vectors.Vec3 `json:"surface"`
	Emission     vectors.Vec3 `json:"emission"`
	Reflection   float64      `json:"reflection,omitempty"`
	Transparency float64      `json:"transparency,omitempty"`
	Texture      string       `json:"texture,omitempty"`
}

// SunCfg adds a light positioned where the Sun appears for an observer.
// Time is RFC3339. Distance, Radius and Emission default to 1000, 50 and {3,3,3}.
type SunCfg struct {
	Time     string       `json:"time"`
	Lat      float64      `json:"lat"`
	Lon      float64      `json:"lon"`
	Distance float64      `json:"distance,omitempty"`
	Radius   float64      `json:"radius,omitempty"`
	Emission vectors.Vec3 `json:"emission"`
}

type Config struct {
	Spheres []SphereCfg `json:"spheres"`
	Sun     *SunCfg     `json:"sun,omitempty"`
}

// TextureLoader resolves texture paths. *texture.Cache satisfies it.
type TextureLoader interface {
	Load(path string) (*texture.Texture, error)
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	for i, s := range cfg.Spheres {
		if !(s.Radius > 0) {
			return Config{}, fmt.Errorf("%w: sphere %d has radius %v", ErrInvalidScene, i, s.Radius)
		}
	}
	if cfg.Sun != nil {
		if _, err := time.Parse(time.RFC3339, cfg.Sun.Time); err != nil {
			return Config{}, fmt.Errorf("%w: sun time: %v", ErrInvalidScene, err)
		}
		sunDefaults(cfg.Sun)
	}
	return cfg, nil
}

func sunDefaults(s *SunCfg) {
	if s.Distance <= 0 {
		s.Distance = 1000
	}
	if s.Radius <= 0 {
		s.Radius = 50
	}
	if s.Emission == vectors.Zero() {
		s.Emission = vectors.Splat(3)
	}
}

// Build turns the config into a scene. Texture paths are joined to baseDir
// unless absolute. Texture failures are returned as-is so callers can decide
// whether to fall back to an untextured sphere.
func (cfg Config) Build(baseDir string, textures TextureLoader) (Scene, error) {
	sc := make(Scene, 0, len(cfg.Spheres)+1)
	for _, s := range cfg.Spheres {
		sphere := NewSphere(s.Center, s.Radius, s.Surface, s.Reflection, s.Transparency, s.Emission)
		if s.Texture != "" {
			path := s.Texture
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}
			tex, err := textures.Load(path)
			if err != nil {
				return nil, err
			}
			sphere = sphere.WithTexture(tex)
		}
		sc = append(sc, sphere)
	}

	if cfg.Sun != nil {
		t, err := time.Parse(time.RFC3339, cfg.Sun.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: sun time: %v", ErrInvalidScene, err)
		}
		sun, up := SunLight(t, cfg.Sun.Lat, cfg.Sun.Lon, cfg.Sun.Distance, cfg.Sun.Radius, cfg.Sun.Emission)
		if !up {
			slog.Warn("sun is below the horizon", "time", t, "lat", cfg.Sun.Lat, "lon", cfg.Sun.Lon)
		}
		sc = append(sc, sun)
	}
	return sc, nil
}

// LoadFile reads and builds the JSON scene at path.
func LoadFile(path string, textures TextureLoader) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg.Build(filepath.Dir(path), textures)
}
