package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/scrcpyctl/scrcpyctl/internal/command"
	"github.com/scrcpyctl/scrcpyctl/internal/config"
	"github.com/scrcpyctl/scrcpyctl/internal/httpserver"
	"github.com/scrcpyctl/scrcpyctl/internal/logging"
	"github.com/scrcpyctl/scrcpyctl/internal/options"
	"github.com/scrcpyctl/scrcpyctl/internal/status"
)

const previewPlaceholder = "Please select the scrcpy executable..."

// connectResetDelay is how long the Connect button stays disabled after a
// launch before it re-arms.
const connectResetDelay = 3 * time.Second

// buildMainWindow assembles the whole controller window and wires every
// widget to the option set.
func buildMainWindow(a fyne.App, ctl *controller) fyne.Window {
	opts := ctl.Snapshot()
	applyTheme(a, opts.DarkMode)

	window := a.NewWindow("Scrcpy Controller")

	// --- Header ---
	title := widget.NewLabel("Scrcpy Controller")
	title.TextStyle = fyne.TextStyle{Bold: true}
	darkMode := widget.NewCheck("Dark Mode", func(on bool) {
		ctl.Update(func(o *options.Options) { o.DarkMode = on })
		applyTheme(a, on)
	})
	darkMode.SetChecked(opts.DarkMode)
	header := container.NewBorder(nil, nil, title, darkMode)

	// --- Executable path ---
	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("Path to the scrcpy executable")
	pathEntry.SetText(opts.ScrcpyPath)
	pathEntry.Disable() // set through the Browse dialog only
	browse := widget.NewButton("Browse...", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, window)
				return
			}
			if reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()
			ctl.Update(func(o *options.Options) { o.ScrcpyPath = path })
			pathEntry.SetText(path)
		}, window)
	})
	pathRow := container.NewBorder(nil, nil, nil, browse, pathEntry)

	// --- Video & display (screen mirroring mode) ---
	bitRateValue := widget.NewLabel(strconv.Itoa(opts.BitRate))
	bitRateSlider := widget.NewSlider(options.MinBitRate, options.MaxBitRate)
	bitRateSlider.Step = 1
	bitRateSlider.SetValue(float64(opts.BitRate))
	bitRateSlider.OnChanged = func(v float64) {
		bitRateValue.SetText(strconv.Itoa(int(v)))
		ctl.Update(func(o *options.Options) { o.BitRate = int(v) })
	}

	fpsValue := widget.NewLabel(strconv.Itoa(opts.MaxFps))
	fpsSlider := widget.NewSlider(options.MinMaxFps, options.MaxMaxFps)
	fpsSlider.Step = 1
	fpsSlider.SetValue(float64(opts.MaxFps))
	fpsSlider.OnChanged = func(v float64) {
		fpsValue.SetText(strconv.Itoa(int(v)))
		ctl.Update(func(o *options.Options) { o.MaxFps = int(v) })
	}

	maxSize := widget.NewSelect(options.MaxSizeChoices, func(v string) {
		ctl.Update(func(o *options.Options) { o.MaxSize = v })
	})
	maxSize.SetSelected(opts.MaxSize)

	videoGroup := widget.NewCard("Video & Display", "", container.New(layout.NewFormLayout(),
		widget.NewLabel("Video Bit Rate (Mbps):"),
		container.NewBorder(nil, nil, nil, bitRateValue, bitRateSlider),
		widget.NewLabel("Max FPS:"),
		container.NewBorder(nil, nil, nil, fpsValue, fpsSlider),
		widget.NewLabel("Max Resolution:"),
		maxSize,
	))

	// --- General toggles ---
	boolCheck := func(label string, initial bool, set func(*options.Options, bool)) *widget.Check {
		check := widget.NewCheck(label, func(on bool) {
			ctl.Update(func(o *options.Options) { set(o, on) })
		})
		check.SetChecked(initial)
		return check
	}

	fullscreen := boolCheck("Fullscreen", opts.Fullscreen,
		func(o *options.Options, on bool) { o.Fullscreen = on })
	alwaysOnTop := boolCheck("Always on Top", opts.AlwaysOnTop,
		func(o *options.Options, on bool) { o.AlwaysOnTop = on })
	showTouches := boolCheck("Show Touches", opts.ShowTouches,
		func(o *options.Options, on bool) { o.ShowTouches = on })
	turnScreenOff := boolCheck("Turn Screen Off", opts.TurnScreenOff,
		func(o *options.Options, on bool) { o.TurnScreenOff = on })
	stayAwake := boolCheck("Stay Awake", opts.StayAwake,
		func(o *options.Options, on bool) { o.StayAwake = on })
	audioForward := boolCheck("Forward Audio", opts.AudioForward,
		func(o *options.Options, on bool) { o.AudioForward = on })

	generalGroup := widget.NewCard("General Options", "", container.NewGridWithColumns(2,
		fullscreen, alwaysOnTop, showTouches, turnScreenOff, stayAwake, audioForward,
	))

	// --- Recording ---
	recordEntry := widget.NewEntry()
	recordEntry.SetPlaceHolder("Recording output file")
	recordEntry.SetText(opts.RecordFilePath)
	recordEntry.OnChanged = func(v string) {
		ctl.Update(func(o *options.Options) { o.RecordFilePath = v })
	}
	recordBrowse := widget.NewButton("Save As...", func() {
		saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, window)
				return
			}
			if writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			ctl.Update(func(o *options.Options) { o.RecordFilePath = path })
			recordEntry.SetText(path)
		}, window)
		saveDialog.SetFileName("recording.mp4")
		saveDialog.Show()
	})

	toggleRecording := func(on bool) {
		if on {
			recordEntry.Enable()
			recordBrowse.Enable()
		} else {
			recordEntry.Disable()
			recordBrowse.Disable()
		}
	}
	recordScreen := widget.NewCheck("Record Screen", func(on bool) {
		toggleRecording(on)
		ctl.Update(func(o *options.Options) { o.RecordScreen = on })
	})
	recordScreen.SetChecked(opts.RecordScreen)
	toggleRecording(opts.RecordScreen)

	recordGroup := widget.NewCard("Recording", "", container.NewVBox(
		recordScreen,
		container.NewBorder(nil, nil, nil, recordBrowse, recordEntry),
	))

	// --- Camera mirroring ---
	cameraFacing := widget.NewSelect(options.CameraFacingChoices, func(v string) {
		ctl.Update(func(o *options.Options) { o.CameraFacing = v })
	})
	cameraFacing.SetSelected(opts.CameraFacing)

	cameraSize := widget.NewSelect(options.CameraSizeChoices, func(v string) {
		ctl.Update(func(o *options.Options) { o.CameraSize = v })
	})
	cameraSize.SetSelected(opts.CameraSize)

	cameraOrientation := widget.NewSelect(options.CameraOrientationChoices, func(v string) {
		ctl.Update(func(o *options.Options) { o.CameraOrientation = v })
	})
	cameraOrientation.SetSelected(opts.CameraOrientation)

	// Camera and screen mirroring are mutually exclusive; gray out whichever
	// half is inactive
	toggleCameraMode := func(cameraMode bool) {
		if cameraMode {
			bitRateSlider.Disable()
			fpsSlider.Disable()
			maxSize.Disable()
			cameraFacing.Enable()
			cameraSize.Enable()
			cameraOrientation.Enable()
		} else {
			bitRateSlider.Enable()
			fpsSlider.Enable()
			maxSize.Enable()
			cameraFacing.Disable()
			cameraSize.Disable()
			cameraOrientation.Disable()
		}
	}
	mirrorCamera := widget.NewCheck("Mirror Camera", func(on bool) {
		toggleCameraMode(on)
		ctl.Update(func(o *options.Options) { o.MirrorCamera = on })
	})
	mirrorCamera.SetChecked(opts.MirrorCamera)
	toggleCameraMode(opts.MirrorCamera)

	cameraHint := widget.NewLabel("Stuttering? Disable audio or lower bit rates.")
	cameraHint.TextStyle = fyne.TextStyle{Italic: true}

	cameraGroup := widget.NewCard("Camera Mirroring", "", container.NewVBox(
		mirrorCamera,
		container.New(layout.NewFormLayout(),
			widget.NewLabel("Facing:"), cameraFacing,
			widget.NewLabel("Size:"), cameraSize,
			widget.NewLabel("Orientation:"), cameraOrientation,
		),
		cameraHint,
	))

	// --- Advanced: codecs, audio, buffering ---
	videoCodec := widget.NewSelect(options.VideoCodecChoices, func(v string) {
		ctl.Update(func(o *options.Options) { o.VideoCodec = v })
	})
	videoCodec.SetSelected(opts.VideoCodec)

	audioCodec := widget.NewSelect(options.AudioCodecChoices, func(v string) {
		ctl.Update(func(o *options.Options) { o.AudioCodec = v })
	})
	audioCodec.SetSelected(opts.AudioCodec)

	codecGroup := widget.NewCard("Codecs", "", container.New(layout.NewFormLayout(),
		widget.NewLabel("Video Codec:"), videoCodec,
		widget.NewLabel("Audio Codec:"), audioCodec,
	))

	audioBitRate := widget.NewSelect(options.AudioBitRateChoices, func(v string) {
		ctl.Update(func(o *options.Options) { o.AudioBitRate = v })
	})
	audioBitRate.SetSelected(opts.AudioBitRate)

	audioGroup := widget.NewCard("Audio Performance", "", container.New(layout.NewFormLayout(),
		widget.NewLabel("Audio Bit Rate (kbps):"), audioBitRate,
	))

	bufferValue := widget.NewLabel(strconv.Itoa(opts.VideoBuffer))
	bufferSlider := widget.NewSlider(options.MinVideoBuffer, options.MaxVideoBuffer)
	bufferSlider.Step = 1
	bufferSlider.SetValue(float64(opts.VideoBuffer))
	bufferSlider.OnChanged = func(v float64) {
		bufferValue.SetText(strconv.Itoa(int(v)))
		ctl.Update(func(o *options.Options) { o.VideoBuffer = int(v) })
	}

	v4l2Entry := widget.NewEntry()
	v4l2Entry.SetPlaceHolder("/dev/video2")
	v4l2Entry.SetText(opts.V4L2SinkPath)
	v4l2Entry.OnChanged = func(v string) {
		ctl.Update(func(o *options.Options) { o.V4L2SinkPath = v })
	}

	bufferGroup := widget.NewCard("Buffering & Other", "", container.New(layout.NewFormLayout(),
		widget.NewLabel("Video Buffer (ms):"),
		container.NewBorder(nil, nil, nil, bufferValue, bufferSlider),
		widget.NewLabel("V4L2 Sink (Linux):"),
		v4l2Entry,
	))

	tabs := container.NewAppTabs(
		container.NewTabItem("Basic Settings", container.NewVBox(
			videoGroup, generalGroup, recordGroup, cameraGroup,
		)),
		container.NewTabItem("Advanced Settings", container.NewVBox(
			codecGroup, audioGroup, bufferGroup,
		)),
	)

	// --- Command preview, status, connect ---
	preview := widget.NewLabel(previewPlaceholder)
	preview.Wrapping = fyne.TextWrapWord
	preview.TextStyle = fyne.TextStyle{Monospace: true}
	previewGroup := widget.NewCard("Generated Command", "", preview)

	statusLabel := widget.NewLabel("")
	statusLabel.Wrapping = fyne.TextWrapWord

	connect := widget.NewButton("Connect", nil)
	connect.Importance = widget.HighImportance
	connect.Disable()

	refreshPreview := func() {
		tokens := ctl.Tokens()
		if tokens == nil {
			preview.SetText(previewPlaceholder)
			connect.Disable()
			return
		}
		cmdLine := command.Join(tokens)
		preview.SetText(cmdLine)
		httpserver.Publish(status.Preview, cmdLine)
		if connect.Text == "Connect" {
			connect.Enable()
		}
	}

	connect.OnTapped = func() {
		tokens := ctl.Tokens()
		if tokens == nil {
			dialog.ShowError(errors.New("scrcpy executable path is not set"), window)
			return
		}

		connect.Disable()
		connect.SetText("Connecting...")
		status.Send(status.Launching, "Launching scrcpy...")
		httpserver.Publish(status.Launching, "Launching scrcpy...")

		if err := ctl.Launch(); err != nil {
			logging.ErrorLogger.Printf("Launch failed: %v", err)
			dialog.ShowError(err, window)
			status.Send(status.Error, "Error: "+err.Error())
			httpserver.Publish(status.Error, "Error: "+err.Error())
		}

		// Re-arm the button after a fixed delay, launch tracked no further
		time.AfterFunc(connectResetDelay, func() {
			connect.SetText("Connect")
			if ctl.Tokens() != nil {
				connect.Enable()
			}
			status.Send(status.Ready, "Ready")
			httpserver.Publish(status.Ready, "Ready")
		})
	}

	// Every option mutation reruns the command builder
	ctl.onChange = refreshPreview
	refreshPreview()

	// Status updates from launches and the settings layer
	go func() {
		for msg := range status.StatusChan {
			statusLabel.SetText(msg.Text)
			statusLabel.TextStyle = fyne.TextStyle{
				Bold: strings.HasPrefix(msg.Text, "Error:"),
			}
			statusLabel.Refresh()
		}
	}()

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About", func() {
				dialog.ShowInformation("About",
					fmt.Sprintf("Scrcpy Controller\nVersion %s", config.GetProgramVersion()), window)
			}),
		),
	)
	window.SetMainMenu(mainMenu)

	content := container.NewPadded(container.NewVBox(
		header,
		widget.NewCard("Scrcpy Executable", "", pathRow),
		tabs,
		previewGroup,
		statusLabel,
		connect,
	))

	window.SetContent(container.NewVScroll(content))
	window.Resize(fyne.NewSize(620, 900))
	window.CenterOnScreen()

	return window
}
