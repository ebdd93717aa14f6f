package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestRunRejectsUnknownPreset(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()

	old := *flagPreset
	*flagPreset = "impossible"
	defer func() { *flagPreset = old }()

	assert.Equal(t, 2, run())
	assert.FileExists(t, filepath.Join(dir, "state", "termsweep", "termsweep.log"))
	assert.Equal(t, os.Stderr, log.Out, "log file released on exit")
}
