package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		_, err := Load("/nonexistent/path/nativelib.toml")
		if err != ErrConfigNotFound {
			t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ConfigFile)
		content := `
[demo]
left = 7
right = 8

[soak]
cycles = 50

[stress]
workers = 2
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Demo.Left != 7 || cfg.Demo.Right != 8 {
			t.Errorf("Demo = %+v, want {7 8}", cfg.Demo)
		}
		if cfg.Soak.Cycles != 50 {
			t.Errorf("Soak.Cycles = %d, want 50", cfg.Soak.Cycles)
		}
		if cfg.Stress.Workers != 2 {
			t.Errorf("Stress.Workers = %d, want 2", cfg.Stress.Workers)
		}
		if cfg.Stress.Iterations != DefaultIterations {
			t.Errorf("Stress.Iterations = %d, want default %d", cfg.Stress.Iterations, DefaultIterations)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ConfigFile)
		if err := os.WriteFile(path, []byte("invalid[toml"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if err == nil {
			t.Error("Load() should return error for invalid TOML")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ConfigFile)
		if err := os.WriteFile(path, []byte("[soak]\ncycles = 0\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if err == nil {
			t.Error("Load() should reject zero cycles")
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("/nonexistent/path/nativelib.toml")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Demo.Left != DefaultLeft || cfg.Demo.Right != DefaultRight {
		t.Errorf("Demo = %+v, want defaults", cfg.Demo)
	}
	if cfg.Soak.Cycles != DefaultCycles {
		t.Errorf("Soak.Cycles = %d, want %d", cfg.Soak.Cycles, DefaultCycles)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero cycles", func(c *Config) { c.Soak.Cycles = 0 }, true},
		{"negative workers", func(c *Config) { c.Stress.Workers = -1 }, true},
		{"zero iterations", func(c *Config) { c.Stress.Iterations = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	subdir := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(root, ConfigFile)
	if err := os.WriteFile(configPath, []byte("[soak]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(subdir)

	found := findConfig()
	if found != configPath {
		t.Errorf("findConfig() = %q, want %q", found, configPath)
	}
}
