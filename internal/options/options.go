// Package options holds the full set of user-selectable scrcpy options.
//
// The JSON tags double as the settings-file keys, so files written by older
// versions of the controller keep loading unchanged.
package options

// Sentinel values for the enumerated options. "Default" (and "Device Native"
// for the resolution) mean "emit no flag and let scrcpy decide".
const (
	DefaultChoice    = "Default"
	NativeResolution = "Device Native"
)

// Defaults and UI widget bounds for the numeric options. The command builder
// trusts the values as-is; only the sliders enforce the ranges.
const (
	DefaultBitRate      = 8 // Mbps
	MinBitRate          = 1
	MaxBitRate          = 50
	DefaultMaxFps       = 60
	MinMaxFps           = 5
	MaxMaxFps           = 120
	DefaultMaxSize      = "1080"
	DefaultAudioBitRate = "128" // kbps
	DefaultVideoBuffer  = 0     // ms, 0 = disabled
	MinVideoBuffer      = 0
	MaxVideoBuffer      = 200
)

// Choice lists for the enumerated options, in display order.
var (
	MaxSizeChoices           = []string{NativeResolution, "1920", "1280", "1080", "720"}
	VideoCodecChoices        = []string{DefaultChoice, "h264", "h265", "av1"}
	AudioCodecChoices        = []string{DefaultChoice, "opus", "aac", "flac", "raw"}
	AudioBitRateChoices      = []string{"64", "96", "128", "192", "256"}
	CameraFacingChoices      = []string{"back", "front"}
	CameraSizeChoices        = []string{DefaultChoice, "1920x1080", "1280x720", "640x480"}
	CameraOrientationChoices = []string{DefaultChoice, "0°", "90°", "180°", "270°"}
)

// Options is the complete option set. One instance lives for the whole
// application run: loaded at startup, mutated by the UI, saved at exit.
type Options struct {
	ScrcpyPath string `json:"scrcpy_path"`
	DarkMode   bool   `json:"dark_mode"`

	// Screen mirroring
	BitRate int    `json:"bit_rate"` // Mbps
	MaxFps  int    `json:"max_fps"`
	MaxSize string `json:"max_size"`

	// General toggles, applied in both mirroring modes
	Fullscreen    bool `json:"fullscreen"`
	AlwaysOnTop   bool `json:"always_on_top"`
	ShowTouches   bool `json:"show_touches"`
	TurnScreenOff bool `json:"turn_screen_off"`
	StayAwake     bool `json:"stay_awake"`

	// Audio
	AudioForward bool   `json:"audio_forward"`
	AudioBitRate string `json:"audio_bit_rate"` // kbps

	// Recording
	RecordScreen   bool   `json:"record_screen"`
	RecordFilePath string `json:"record_file_path"`

	// Camera mirroring, mutually exclusive with screen mirroring
	MirrorCamera      bool   `json:"mirror_camera"`
	CameraFacing      string `json:"camera_facing"`
	CameraSize        string `json:"camera_size"`
	CameraOrientation string `json:"camera_orientation"`

	// Advanced
	VideoCodec   string `json:"video_codec"`
	AudioCodec   string `json:"audio_codec"`
	VideoBuffer  int    `json:"video_buffer"` // ms
	V4L2SinkPath string `json:"v4l2_sink_path"`
}

// Defaults returns a fresh option set with every field at its default value.
func Defaults() *Options {
	return &Options{
		DarkMode:          true,
		BitRate:           DefaultBitRate,
		MaxFps:            DefaultMaxFps,
		MaxSize:           DefaultMaxSize,
		AudioForward:      true,
		AudioBitRate:      DefaultAudioBitRate,
		CameraFacing:      "back",
		CameraSize:        DefaultChoice,
		CameraOrientation: DefaultChoice,
		VideoCodec:        DefaultChoice,
		AudioCodec:        DefaultChoice,
		VideoBuffer:       DefaultVideoBuffer,
	}
}

// Field kinds, as stored in the settings file.
const (
	KindBool   = "bool"
	KindInt    = "int"
	KindString = "string"
)

// Field describes one persisted option.
type Field struct {
	Key  string
	Kind string
}

// Fields enumerates every persisted option with its settings-file key and
// kind. This list is the single source of truth for what gets saved and
// bound; a test checks it against the JSON encoding of Options.
func Fields() []Field {
	return []Field{
		{"scrcpy_path", KindString},
		{"dark_mode", KindBool},
		{"bit_rate", KindInt},
		{"max_fps", KindInt},
		{"max_size", KindString},
		{"fullscreen", KindBool},
		{"always_on_top", KindBool},
		{"show_touches", KindBool},
		{"turn_screen_off", KindBool},
		{"stay_awake", KindBool},
		{"audio_forward", KindBool},
		{"audio_bit_rate", KindString},
		{"record_screen", KindBool},
		{"record_file_path", KindString},
		{"mirror_camera", KindBool},
		{"camera_facing", KindString},
		{"camera_size", KindString},
		{"camera_orientation", KindString},
		{"video_codec", KindString},
		{"audio_codec", KindString},
		{"video_buffer", KindInt},
		{"v4l2_sink_path", KindString},
	}
}
