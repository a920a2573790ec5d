// Package command turns an option set into a scrcpy command line.
package command

import (
	"fmt"
	"strings"

	"github.com/scrcpyctl/scrcpyctl/internal/options"
)

// Maps the orientation labels shown in the UI to the small integers
// --capture-orientation expects. Labels not in this map emit no flag.
var orientationTokens = map[string]string{
	"0°":   "0",
	"90°":  "1",
	"180°": "2",
	"270°": "3",
}

// Build constructs the scrcpy argument list for the given options. The first
// token is always the quoted executable path. Returns nil when no executable
// has been selected yet.
//
// Flags that match scrcpy's own default are omitted so the tool keeps
// deciding for itself; token order is stable because the result is shown to
// the user verbatim.
func Build(opts *options.Options) []string {
	if opts.ScrcpyPath == "" {
		return nil
	}

	// Plain double quotes, not strconv-style escaping: the token goes to a
	// shell, and Windows paths contain backslashes that must stay literal.
	cmd := []string{`"` + opts.ScrcpyPath + `"`}

	if opts.MirrorCamera {
		cmd = append(cmd, "--video-source=camera")
		cmd = append(cmd, "--camera-facing="+opts.CameraFacing)
		if opts.CameraSize != options.DefaultChoice {
			cmd = append(cmd, "--camera-size="+strings.TrimSpace(opts.CameraSize))
		}
		if token, ok := orientationTokens[opts.CameraOrientation]; ok {
			cmd = append(cmd, "--capture-orientation="+token)
		}
	} else {
		cmd = append(cmd, fmt.Sprintf("--video-bit-rate=%dM", opts.BitRate))
		cmd = append(cmd, fmt.Sprintf("--max-fps=%d", opts.MaxFps))
		if opts.MaxSize != options.NativeResolution {
			cmd = append(cmd, "--max-size="+opts.MaxSize)
		}
	}

	if opts.Fullscreen {
		cmd = append(cmd, "--fullscreen")
	}
	if opts.AlwaysOnTop {
		cmd = append(cmd, "--always-on-top")
	}
	if opts.ShowTouches {
		cmd = append(cmd, "--show-touches")
	}
	if opts.TurnScreenOff {
		cmd = append(cmd, "--turn-screen-off")
	}
	if opts.StayAwake {
		cmd = append(cmd, "--stay-awake")
	}

	if !opts.AudioForward {
		cmd = append(cmd, "--no-audio")
	} else if opts.AudioBitRate != options.DefaultAudioBitRate {
		cmd = append(cmd, "--audio-bit-rate="+opts.AudioBitRate+"k")
	}

	if opts.RecordScreen && strings.TrimSpace(opts.RecordFilePath) != "" {
		cmd = append(cmd, `--record="`+strings.TrimSpace(opts.RecordFilePath)+`"`)
	}

	if opts.VideoCodec != options.DefaultChoice {
		cmd = append(cmd, "--video-codec="+opts.VideoCodec)
	}
	if opts.AudioCodec != options.DefaultChoice {
		cmd = append(cmd, "--audio-codec="+opts.AudioCodec)
	}
	if opts.VideoBuffer > 0 {
		cmd = append(cmd, fmt.Sprintf("--video-buffer=%d", opts.VideoBuffer))
	}
	if strings.TrimSpace(opts.V4L2SinkPath) != "" {
		cmd = append(cmd, "--v4l2-sink="+strings.TrimSpace(opts.V4L2SinkPath))
	}

	return cmd
}

// Join renders a token list the way it is displayed and launched.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}
