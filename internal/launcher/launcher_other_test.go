//go:build !windows

package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchStartsDetachedProcess(t *testing.T) {
	// The shell swallows the child's fate; Launch only reports start failures
	err := Launch([]string{`"true"`}, t.TempDir())
	require.NoError(t, err)
}

func TestLaunchReportsStartFailure(t *testing.T) {
	cmd := shellCommand("true")
	cmd.Path = "/nonexistent/shell"
	err := cmd.Start()
	assert.Error(t, err)
}
