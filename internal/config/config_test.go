package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 200, cfg.Simulation.Calls)
	assert.Equal(t, 12, cfg.Simulation.Agents)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9090"
webhook_url: https://hooks.example.com/T000/B000
simulation:
  calls: 500
  agents: 20
  seed: 7
  simulate_interruptions: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://hooks.example.com/T000/B000", cfg.WebhookURL)
	assert.Equal(t, 500, cfg.Simulation.Calls)
	assert.Equal(t, 20, cfg.Simulation.Agents)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.True(t, cfg.Simulation.SimulateInterruptions)
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  calls: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.Simulation.Calls)
	assert.Equal(t, 12, cfg.Simulation.Agents)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  calls: -5\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "simulation.calls")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "7070")
	t.Setenv("SIM_CALLS", "33")
	t.Setenv("SIM_AGENTS", "3")
	t.Setenv("SIM_SEED", "99")
	t.Setenv("SIM_INTERRUPTIONS", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 33, cfg.Simulation.Calls)
	assert.Equal(t, 3, cfg.Simulation.Agents)
	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.True(t, cfg.Simulation.SimulateInterruptions)
}

func TestFromEnvBadNumber(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SIM_CALLS", "many")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "SIM_CALLS")
}
