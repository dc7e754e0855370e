package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2, cfg.QuitTimes)
	assert.Equal(t, 5*time.Second, cfg.MessageTimeout.Std())
	assert.Equal(t, 100*time.Millisecond, cfg.KeyTimeout.Std())
	assert.True(t, cfg.WatchFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
quit_times = 4
message_timeout = "2s"
key_timeout = "50ms"
log_file = "/tmp/crew.log"
watch_file = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.QuitTimes)
	assert.Equal(t, 2*time.Second, cfg.MessageTimeout.Std())
	assert.Equal(t, 50*time.Millisecond, cfg.KeyTimeout.Std())
	assert.Equal(t, "/tmp/crew.log", cfg.LogFile)
	assert.False(t, cfg.WatchFile)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
quit_times: 0
message_timeout: 1m
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.QuitTimes)
	assert.Equal(t, time.Minute, cfg.MessageTimeout.Std())
	assert.Equal(t, 100*time.Millisecond, cfg.KeyTimeout.Std(), "unset keys keep defaults")
}

func TestLoadPartialTOMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "config.toml", `log_file = "x.log"`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.QuitTimes)
	assert.True(t, cfg.WatchFile)
	assert.Equal(t, "x.log", cfg.LogFile)
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "config.toml", `quit_times = = 3`)
	_, err := Load(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, "config.yml", `key_timeout: soon`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.ini", `quit_times=1`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "config.toml", `quit_times = 4`)
	t.Setenv(EnvQuitTimes, "7")
	t.Setenv(EnvKeyTimeout, "20ms")
	t.Setenv(EnvWatchFile, "false")
	t.Setenv(EnvLogFile, "env.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.QuitTimes)
	assert.Equal(t, 20*time.Millisecond, cfg.KeyTimeout.Std())
	assert.False(t, cfg.WatchFile)
	assert.Equal(t, "env.log", cfg.LogFile)
}

func TestApplyEnvErrors(t *testing.T) {
	tests := map[string]string{
		EnvQuitTimes:      "many",
		EnvMessageTimeout: "forever",
		EnvKeyTimeout:     "10 parsecs",
		EnvWatchFile:      "perhaps",
	}
	for env, value := range tests {
		t.Run(env, func(t *testing.T) {
			cfg := Default()
			lookup := func(key string) (string, bool) {
				if key == env {
					return value, true
				}
				return "", false
			}
			err := cfg.applyEnv(lookup)
			assert.ErrorContains(t, err, env)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.QuitTimes = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MessageTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.KeyTimeout = Duration(-time.Second)
	assert.Error(t, cfg.Validate())
}

func TestDurationText(t *testing.T) {
	d := Duration(1500 * time.Millisecond)
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(text))

	var back Duration
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d, back)
}
