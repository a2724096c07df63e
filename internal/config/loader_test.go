package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "game.yaml")

	content := []byte(`
world:
  width: 300
  height: 500
  max_delta: 0.1
player:
  fire_rate: 4.0
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.Width != 300 || cfg.World.Height != 500 {
		t.Errorf("world = %vx%v, expected 300x500", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Player.FireRate != 4.0 {
		t.Errorf("fireRate = %v, expected 4.0", cfg.Player.FireRate)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load("/nonexistent/game.yaml"); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [not a map"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded Game
	if err := yaml.Unmarshal(defaultGameYAML, &embedded); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if !reflect.DeepEqual(embedded, DefaultGame()) {
		t.Errorf("embedded default diverges from DefaultGame():\nembedded:  %+v\nhardcoded: %+v", embedded, DefaultGame())
	}
}

func TestDefaultGameIsSane(t *testing.T) {
	g := DefaultGame()

	if g.World.Width <= 0 || g.World.Height <= 0 {
		t.Error("world dimensions must be positive")
	}
	if g.World.MaxDelta <= 0 {
		t.Error("max delta must be positive")
	}
	if g.Player.FireRate <= 0 {
		t.Error("fire rate must be positive")
	}
	if g.Raiders.MinSize > g.Raiders.MaxSize {
		t.Error("raider size range inverted")
	}
	if g.Raiders.MinInterval > g.Raiders.MaxInterval {
		t.Error("spawn interval range inverted")
	}
	if g.Autosave.Interval <= 0 {
		t.Error("autosave interval must be positive")
	}
	if len(g.Offers) == 0 {
		t.Error("default config should carry offers")
	}
	for _, o := range g.Offers {
		if o.Cost <= 0 {
			t.Errorf("offer %q has non-positive cost", o.ID)
		}
	}
}
