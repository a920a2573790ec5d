package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scrcpyctl/scrcpyctl/internal/command"
	"github.com/scrcpyctl/scrcpyctl/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandHandler(t *testing.T) {
	opts := options.Defaults()
	opts.ScrcpyPath = "/usr/bin/scrcpy"
	commandSource = func() []string { return command.Build(opts) }

	rec := httptest.NewRecorder()
	commandHandler(rec, httptest.NewRequest(http.MethodGet, "/command", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp CommandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, `"/usr/bin/scrcpy" --video-bit-rate=8M --max-fps=60 --max-size=1080`, resp.Command)
	assert.Equal(t, []string{
		`"/usr/bin/scrcpy"`,
		"--video-bit-rate=8M",
		"--max-fps=60",
		"--max-size=1080",
	}, resp.Tokens)
}

func TestCommandHandlerWithoutExecutable(t *testing.T) {
	commandSource = func() []string { return command.Build(options.Defaults()) }

	rec := httptest.NewRecorder()
	commandHandler(rec, httptest.NewRequest(http.MethodGet, "/command", nil))

	var resp CommandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Tokens)
	assert.Empty(t, resp.Command)
}

func TestIndexHandlerShowsCommand(t *testing.T) {
	opts := options.Defaults()
	opts.ScrcpyPath = "/usr/bin/scrcpy"
	commandSource = func() []string { return command.Build(opts) }

	rec := httptest.NewRecorder()
	indexHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--video-bit-rate=8M")
}

func TestIndexHandlerWithoutExecutable(t *testing.T) {
	commandSource = func() []string { return nil }

	rec := httptest.NewRecorder()
	indexHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No scrcpy executable selected.")
}
