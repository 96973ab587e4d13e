package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Entropy.Depth)
	assert.Equal(t, 16, cfg.Entropy.ProbeLimit)
	assert.Equal(t, []uint64{16, 32, 64}, cfg.Strata.Bounds)
	assert.Len(t, cfg.Universes, 4)
	assert.Equal(t, "turtle", cfg.Export.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero depth",
			modify:  func(c *Config) { c.Entropy.Depth = 0 },
			wantErr: true,
		},
		{
			name:    "depth too deep",
			modify:  func(c *Config) { c.Entropy.Depth = 9 },
			wantErr: true,
		},
		{
			name:    "zero probe limit",
			modify:  func(c *Config) { c.Entropy.ProbeLimit = 0 },
			wantErr: true,
		},
		{
			name:    "unknown export format",
			modify:  func(c *Config) { c.Export.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: true,
		},
		{
			name:    "unnamed universe",
			modify:  func(c *Config) { c.Universes = append(c.Universes, UniverseConfig{Width: 3}) },
			wantErr: true,
		},
		{
			name:    "duplicate universe name",
			modify:  func(c *Config) { c.Universes = append(c.Universes, UniverseConfig{Name: "discrete", Width: 3}) },
			wantErr: true,
		},
		{
			name:    "empty bounds allowed",
			modify:  func(c *Config) { c.Strata.Bounds = nil },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
entropy:
  depth: 2
  probe_limit: 8
strata:
  bounds: [10, 20]
universes:
  - name: wide
    width: 6
export:
  format: jsonld
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Entropy.Depth)
	assert.Equal(t, 8, cfg.Entropy.ProbeLimit)
	assert.Equal(t, []uint64{10, 20}, cfg.Strata.Bounds)
	assert.Equal(t, []UniverseConfig{{Name: "wide", Width: 6}}, cfg.Universes)
	assert.Equal(t, "jsonld", cfg.Export.Format)
	assert.Empty(t, cfg.Log.Level)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Entropy: EntropyConfig{Depth: 3},
		Log:     LogConfig{Level: "debug"},
	}

	base.Merge(override)

	assert.Equal(t, 3, base.Entropy.Depth)
	assert.Equal(t, 16, base.Entropy.ProbeLimit, "zero values must not override")
	assert.Equal(t, "debug", base.Log.Level)
	assert.Equal(t, "turtle", base.Export.Format)
	assert.Len(t, base.Universes, 4)

	base.Merge(nil)
	assert.Equal(t, 3, base.Entropy.Depth)
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Entropy.Depth = 4
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoaderPrecedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	userPath := filepath.Join(home, UserConfigDir, UserConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0755))
	require.NoError(t, os.WriteFile(userPath, []byte("entropy:\n  depth: 2\nlog:\n  level: warn\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(project, ProjectConfigFile), []byte("entropy:\n  depth: 3\n"), 0644))

	loader := NewLoader(nil).
		WithDirs(nested, home).
		WithEnvironment(map[string]string{
			"SEMVERSE_EXPORT_FORMAT": "ntriples",
			"SEMVERSE_STRATA_BOUNDS": "5,50",
		})

	cfg, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Entropy.Depth, "project config beats user config")
	assert.Equal(t, "warn", cfg.Log.Level, "user config beats defaults")
	assert.Equal(t, "ntriples", cfg.Export.Format, "environment beats files")
	assert.Equal(t, []uint64{5, 50}, cfg.Strata.Bounds)
}

func TestLoaderExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entropy:\n  probe_limit: 4\n"), 0644))

	cfg, err := NewLoader(nil).
		WithDirs(dir, dir).
		WithEnvironment(map[string]string{}).
		Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Entropy.ProbeLimit)

	_, err = NewLoader(nil).WithDirs(dir, dir).WithEnvironment(map[string]string{}).Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoaderRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := NewLoader(nil).
		WithDirs(dir, dir).
		WithEnvironment(map[string]string{"SEMVERSE_ENTROPY_DEPTH": "0"}).
		Load("")
	assert.Error(t, err)
}

func TestEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	loader := NewLoader(nil).WithDirs(home, home)

	require.NoError(t, loader.EnsureUserConfig())

	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// Existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0644))
	require.NoError(t, loader.EnsureUserConfig())
	cfg, err = LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}
