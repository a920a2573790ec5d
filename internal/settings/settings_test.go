package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scrcpyctl/scrcpyctl/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempSettingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.json")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := tempSettingsPath(t)

	saved := options.Defaults()
	saved.ScrcpyPath = "/opt/scrcpy/scrcpy"
	saved.BitRate = 20
	saved.MaxFps = 30
	saved.MaxSize = options.NativeResolution
	saved.StayAwake = true
	saved.AudioForward = false
	saved.MirrorCamera = true
	saved.CameraOrientation = "90°"
	saved.RecordScreen = true
	saved.RecordFilePath = "/tmp/out.mkv"
	saved.VideoBuffer = 120
	saved.V4L2SinkPath = "/dev/video2"
	saved.DarkMode = false
	Save(saved, path)

	loaded := options.Defaults()
	Load(loaded, path)
	assert.Equal(t, saved, loaded)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	opts := options.Defaults()
	Load(opts, filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Equal(t, options.Defaults(), opts)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := tempSettingsPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	opts := options.Defaults()
	Load(opts, path)
	assert.Equal(t, options.Defaults(), opts)
}

func TestLoadCorruptFileKeepsDefaults(t *testing.T) {
	path := tempSettingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"bit_rate": 12,`), 0644))

	opts := options.Defaults()
	Load(opts, path)
	assert.Equal(t, options.Defaults(), opts)
}

func TestLoadTypeMismatchIsNoOp(t *testing.T) {
	path := tempSettingsPath(t)
	// max_fps is valid but bit_rate has the wrong type; the whole load must
	// be discarded, not just the bad key
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"max_fps": 30, "bit_rate": "fast"}`), 0644))

	opts := options.Defaults()
	Load(opts, path)
	assert.Equal(t, options.DefaultMaxFps, opts.MaxFps)
	assert.Equal(t, options.DefaultBitRate, opts.BitRate)
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := tempSettingsPath(t)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"bit_rate": 16, "generated_command": "stale", "future_option": true}`), 0644))

	opts := options.Defaults()
	Load(opts, path)
	assert.Equal(t, 16, opts.BitRate)
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := tempSettingsPath(t)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"scrcpy_path": "/usr/bin/scrcpy", "stay_awake": true}`), 0644))

	opts := options.Defaults()
	Load(opts, path)
	assert.Equal(t, "/usr/bin/scrcpy", opts.ScrcpyPath)
	assert.True(t, opts.StayAwake)
	assert.Equal(t, options.DefaultBitRate, opts.BitRate)
	assert.Equal(t, options.DefaultAudioBitRate, opts.AudioBitRate)
	assert.True(t, opts.AudioForward)
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	path := tempSettingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`garbage`), 0644))

	opts := options.Defaults()
	opts.BitRate = 42
	Save(opts, path)

	loaded := options.Defaults()
	Load(loaded, path)
	assert.Equal(t, 42, loaded.BitRate)
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	opts := options.Defaults()
	// Directory component does not exist; Save must log and return
	assert.NotPanics(t, func() {
		Save(opts, filepath.Join(t.TempDir(), "missing", "settings.json"))
	})
}

func TestDefaultPathIsInHomeDirectory(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".scrcpy_gui_settings.json"), DefaultPath())
}
