package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommandExports(t *testing.T) {
	dir := t.TempDir()

	scriptPath := filepath.Join(dir, "draw.lua")
	err := os.WriteFile(scriptPath, []byte(`
		addLine(0, 0, 10, 0)
		addCircle(5, 5, 2)
		addSimpleText("Hello", 0, 6)
	`), 0o644)
	require.NoError(t, err)

	svgPath := filepath.Join(dir, "out.svg")
	pngPath := filepath.Join(dir, "out.png")

	rootCmd.SetArgs([]string{"run", scriptPath, "--svg", svgPath, "--png", pngPath})
	require.NoError(t, rootCmd.Execute())

	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<svg "))
	assert.Contains(t, string(svg), "<circle ")

	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunCommandMissingScript(t *testing.T) {
	rootCmd.SetArgs([]string{"run", filepath.Join(t.TempDir(), "absent.lua")})
	assert.Error(t, rootCmd.Execute())
}
