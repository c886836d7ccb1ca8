package main

import (
	"testing"

	"github.com/piwi3910/SpritePack/internal/demo"
	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_InputBeforeFlags(t *testing.T) {
	// The usage line puts the input directory first; flags after it
	// must still take effect.
	o, input, err := parseArgs(
		[]string{"./sprites", "-s", "64", "-v", "-o", "probe"},
		model.DefaultAppConfig(),
	)
	require.NoError(t, err)
	assert.Equal(t, "./sprites", input)
	assert.Equal(t, 64, o.size)
	assert.True(t, o.verbose)
	assert.Equal(t, "probe", o.output)
}

func TestParseArgs_InputAfterFlags(t *testing.T) {
	o, input, err := parseArgs(
		[]string{"-s", "128", "-e", "2", "./sprites"},
		model.DefaultAppConfig(),
	)
	require.NoError(t, err)
	assert.Equal(t, "./sprites", input)
	assert.Equal(t, 128, o.size)
	assert.Equal(t, 2, o.expand)
}

func TestParseArgs_DefaultsFromConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.DefaultAtlasSize = 2048
	cfg.DefaultBorder = 3
	cfg.Verbose = true

	o, _, err := parseArgs([]string{"./sprites"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2048, o.size)
	assert.Equal(t, 3, o.border)
	assert.True(t, o.verbose)
	assert.Equal(t, "atlas", o.output)
}

func TestParseArgs_RejectsExtraArguments(t *testing.T) {
	_, _, err := parseArgs(
		[]string{"./sprites", "-s", "64", "./more-sprites"},
		model.DefaultAppConfig(),
	)
	assert.Error(t, err)

	_, _, err = parseArgs(
		[]string{"-s", "64", "./sprites", "./more-sprites"},
		model.DefaultAppConfig(),
	)
	assert.Error(t, err)
}

func TestParseArgs_RequiresInput(t *testing.T) {
	_, _, err := parseArgs([]string{"-s", "64"}, model.DefaultAppConfig())
	assert.Error(t, err)
}

func TestParseArgs_DemoDefaults(t *testing.T) {
	o, input, err := parseArgs([]string{"-demo"}, model.DefaultAppConfig())
	require.NoError(t, err)
	assert.Empty(t, input)
	assert.Equal(t, demo.AtlasSize, o.size)
	assert.Equal(t, "demo", o.output)
}

func TestParseArgs_DemoExplicitFlagsWin(t *testing.T) {
	o, _, err := parseArgs([]string{"-demo", "-s", "512", "-o", "mine"}, model.DefaultAppConfig())
	require.NoError(t, err)
	assert.Equal(t, 512, o.size)
	assert.Equal(t, "mine", o.output)
}

func TestParseArgs_BadFlagValue(t *testing.T) {
	_, _, err := parseArgs([]string{"./sprites", "-s", "huge"}, model.DefaultAppConfig())
	assert.Error(t, err)
}
