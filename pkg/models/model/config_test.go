package model

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	for _, s := range []string{"ON", "On", "on", "1"} {
		assert.Equal(t, On, NewConfig(s), s)
	}
	for _, s := range []string{"OFF", "Off", "off", "0", "maybe", ""} {
		assert.Equal(t, Off, NewConfig(s), s)
	}
}

func TestConfigAsFlag(t *testing.T) {
	var view Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&view, "View", "")

	require.NoError(t, fs.Parse([]string{"-View", "On"}))
	assert.Equal(t, On, view)
	assert.Equal(t, "On", view.String())

	assert.Error(t, view.Set("sometimes"))
	assert.Equal(t, On, view)
}
