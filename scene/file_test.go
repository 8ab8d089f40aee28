package scene

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/echoflaresat/spheretracer/texture"
	"github.com/echoflaresat/spheretracer/vectors"
)

type stubTextures map[string]*texture.Texture

func (s stubTextures) Load(path string) (*texture.Texture, error) {
	if tex, ok := s[path]; ok {
		return tex, nil
	}
	return nil, &texture.LoadError{Path: path, Reason: "open", Err: os.ErrNotExist}
}

const sceneJSON = `{
  "spheres": [
    {"center": {"x": 0, "y": -10004, "z": -20}, "radius": 10000, "surface": {"x": 0.2, "y": 0.2, "z": 0.2}},
    {"center": {"x": 0, "y": 0, "z": -20}, "radius": 4, "surface": {"x": 1, "y": 0.32, "z": 0.36},
     "reflection": 1, "transparency": 0.5, "texture": "tex/marble.ppm"},
    {"center": {"x": 0, "y": 20, "z": -30}, "radius": 3, "surface": {}, "emission": {"x": 3, "y": 3, "z": 3}}
  ]
}`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(path, []byte(sceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	tex := checker(t, 2, 2)
	sc, err := LoadFile(path, stubTextures{filepath.Join(dir, "tex/marble.ppm"): tex})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(sc) != 3 {
		t.Fatalf("got %d spheres, want 3", len(sc))
	}

	mid := sc[1]
	if mid.Radius2() != 16 || mid.Reflection != 1 || mid.Transparency != 0.5 {
		t.Errorf("middle sphere = %+v", mid)
	}
	if mid.Texture != texture.Sampler(tex) {
		t.Error("texture not resolved relative to the scene file")
	}
	if sc[2].EmissionColor != vectors.Splat(3) {
		t.Errorf("light emission = %v", sc[2].EmissionColor)
	}
}

func TestLoadFileTextureFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(path, []byte(sceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path, stubTextures{})
	var le *texture.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want *texture.LoadError", err)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"spheres": [`},
		{"zero radius", `{"spheres": [{"radius": 0}]}`},
		{"negative radius", `{"spheres": [{"radius": -1}]}`},
		{"bad sun time", `{"spheres": [], "sun": {"time": "noon"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); !errors.Is(err, ErrInvalidScene) {
				t.Errorf("got %v, want ErrInvalidScene", err)
			}
		})
	}
}

func TestParseConfigSunDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"spheres": [], "sun": {"time": "2024-06-21T12:00:00Z", "lat": 47, "lon": 19}}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sun.Distance != 1000 || cfg.Sun.Radius != 50 || cfg.Sun.Emission != vectors.Splat(3) {
		t.Errorf("sun defaults = %+v", cfg.Sun)
	}

	sc, err := cfg.Build("", stubTextures{})
	if err != nil {
		t.Fatal(err)
	}
	if len(sc) != 1 || !sc[0].IsLight(false) {
		t.Fatalf("sun light missing: %+v", sc)
	}
	if d := sc[0].Center.Norm(); d < 999 || d > 1001 {
		t.Errorf("sun distance = %v, want 1000", d)
	}
}

func TestBuildWarnsWhenSunIsDown(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	build := func(ts string) {
		t.Helper()
		cfg, err := ParseConfig([]byte(`{"spheres": [], "sun": {"time": "` + ts + `", "lat": 0, "lon": 0}}`))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cfg.Build("", stubTextures{}); err != nil {
			t.Fatal(err)
		}
	}

	build("2024-03-20T12:00:00Z")
	if strings.Contains(buf.String(), "below the horizon") {
		t.Errorf("noon sun logged a warning: %s", buf.String())
	}

	build("2024-03-20T00:00:00Z")
	if !strings.Contains(buf.String(), "sun is below the horizon") {
		t.Errorf("midnight sun did not log a warning, got %q", buf.String())
	}
}
