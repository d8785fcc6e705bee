package core

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const panicConfig = `
[log]
level = "debug"
prefix = "test"

[math]
fallback = "panic"
`

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("[log]\nlevel = \"info\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultConfig().Log.Prefix, cfg.Log.Prefix)
	assert.Equal(t, "sentinel", cfg.Math.Fallback)
}

func TestParseConfigRejectsUnknownPolicy(t *testing.T) {
	_, err := ParseConfig([]byte("[math]\nfallback = \"retry\"\n"))
	assert.ErrorIs(t, err, ErrInvalidFallbackPolicy)
}

func TestParseConfigRejectsBadTOML(t *testing.T) {
	_, err := ParseConfig([]byte("[log\nlevel ="))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigRoundTrip(t *testing.T) {
	cfg, err := ParseConfig([]byte(panicConfig))
	require.NoError(t, err)

	data, err := cfg.Marshal()
	require.NoError(t, err)

	again, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestParseConfigYAML(t *testing.T) {
	cfg, err := ParseConfigYAML([]byte("log:\n  level: error\nmath:\n  fallback: panic\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, DefaultConfig().Log.Prefix, cfg.Log.Prefix)
	assert.Equal(t, "panic", cfg.Math.Fallback)

	empty, err := ParseConfigYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), empty)

	_, err = ParseConfigYAML([]byte("math:\n  fallback: retry\n"))
	assert.ErrorIs(t, err, ErrInvalidFallbackPolicy)

	_, err = ParseConfigYAML([]byte("log: [unterminated"))
	assert.Error(t, err)
}

func TestLoadConfigPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "engine.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("math:\n  fallback: panic\n"), 0o644))
	cfg, err := LoadConfig(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "panic", cfg.Math.Fallback)

	tomlPath := filepath.Join(dir, "engine.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(panicConfig), 0o644))
	cfg, err = LoadConfig(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Log.Prefix)
}

func TestConfigApply(t *testing.T) {
	prev := CurrentFallbackPolicy()
	prevLevel := LogLevel()
	defer func() {
		SetFallbackPolicy(prev)
		require.NoError(t, ConfigureLogger(LogOptions{Level: prevLevel, Output: os.Stderr}))
	}()

	var buf bytes.Buffer
	require.NoError(t, ConfigureLogger(LogOptions{Output: &buf}))

	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(panicConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Apply())

	assert.Equal(t, FallbackPanic, CurrentFallbackPolicy())
	assert.Equal(t, "debug", LogLevel())
	assert.Contains(t, buf.String(), "config applied")
}

func TestConfigApplyBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Apply())
}

func TestConfigWatcherReloadsOnWrite(t *testing.T) {
	prev := CurrentFallbackPolicy()
	prevLevel := LogLevel()
	defer func() {
		SetFallbackPolicy(prev)
		require.NoError(t, ConfigureLogger(LogOptions{Level: prevLevel}))
	}()
	SetFallbackPolicy(FallbackSentinel)

	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("[math]\nfallback = \"sentinel\"\n"), 0o644))

	changed := make(chan *Config, 16)
	cw, err := NewConfigWatcher(path, func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})
	require.NoError(t, err)
	require.NoError(t, cw.Start(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte(panicConfig), 0o644))

	require.Eventually(t, func() bool {
		return CurrentFallbackPolicy() == FallbackPanic
	}, 5*time.Second, 10*time.Millisecond)

	// A truncating write can surface as several events; wait for the final one.
	timeout := time.After(5 * time.Second)
	for seen := false; !seen; {
		select {
		case c := <-changed:
			seen = c.Math.Fallback == "panic"
		case <-timeout:
			t.Fatal("onChange was not called with the new config")
		}
	}

	require.NoError(t, cw.Close())
	assert.ErrorIs(t, cw.Close(), ErrConfigClosed)
	assert.ErrorIs(t, cw.Start(context.Background()), ErrConfigClosed)
}

func TestConfigWatcherStopsOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	cw, err := NewConfigWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, cw.Start(ctx))
	cancel()

	done := make(chan struct{})
	go func() {
		_ = cw.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestConfigWatcherRestartAfterCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	cw, err := NewConfigWatcher(path, nil)
	require.NoError(t, err)
	defer cw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, cw.Start(ctx))
	cancel()

	require.Eventually(t, func() bool {
		return errors.Is(cw.Start(context.Background()), ErrConfigStopped)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestConfigWatcherSkipsUnchangedContent(t *testing.T) {
	cw, err := NewConfigWatcher(filepath.Join(t.TempDir(), "engine.toml"), nil)
	require.NoError(t, err)
	defer cw.Close()

	assert.True(t, cw.changed([]byte(panicConfig)))
	assert.False(t, cw.changed([]byte(panicConfig)))
	assert.True(t, cw.changed(nil))
	assert.True(t, cw.changed([]byte(panicConfig)))
}

func TestConfigWatcherCloseWithoutStart(t *testing.T) {
	cw, err := NewConfigWatcher(filepath.Join(t.TempDir(), "engine.toml"), nil)
	require.NoError(t, err)
	assert.NoError(t, cw.Close())
}
