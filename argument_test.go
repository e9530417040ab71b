package argv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlag_ConfigFuncs(t *testing.T) {
	flag := NewFlag("verbose",
		WithFlagShort("v"),
		WithFlagDescription("enable verbose output"),
		SetFlagRequired(true),
		WithFlagDefault(true),
	)

	assert.Equal(t, "verbose", flag.Name)
	assert.Equal(t, "v", flag.Short)
	assert.Equal(t, "enable verbose output", flag.Description)
	assert.True(t, flag.Required)
	assert.True(t, flag.DefaultValue)
}

func TestNewOption_ConfigFuncs(t *testing.T) {
	option := NewOption("level",
		WithOptionShort("l"),
		WithOptionDescription("log level"),
		SetOptionRequired(true),
		WithOptionDefault("info"),
		WithAllowed("debug", "info", "error"),
	)

	assert.Equal(t, "level", option.Name)
	assert.Equal(t, "l", option.Short)
	assert.Equal(t, "log level", option.Description)
	assert.True(t, option.Required)
	require.NotNil(t, option.DefaultValue)
	assert.Equal(t, "info", *option.DefaultValue)
	assert.Equal(t, []string{"debug", "info", "error"}, option.Allowed)
}

func TestNewOption_NoDefault(t *testing.T) {
	option := NewOption("level")
	assert.Nil(t, option.DefaultValue, "an option without WithOptionDefault has no default, not an empty one")
}

func TestOption_Allows(t *testing.T) {
	unconstrained := NewOption("any")
	assert.True(t, unconstrained.allows("whatever"), "an empty allowed set accepts everything")
	assert.True(t, unconstrained.allows(""))

	constrained := NewOption("level", WithAllowed("debug", "info"))
	assert.True(t, constrained.allows("debug"))
	assert.False(t, constrained.allows("warning"))
	assert.False(t, constrained.allows(""), "the empty string is not implicitly allowed")
}

func TestFlag_Validate(t *testing.T) {
	assert.NoError(t, NewFlag("ok-name_2").validate())
	assert.ErrorIs(t, NewFlag("").validate(), ErrInvalidName)
	assert.ErrorIs(t, NewFlag("bad name").validate(), ErrInvalidName)
	assert.ErrorIs(t, NewFlag("ok", WithFlagShort("xy")).validate(), ErrInvalidAbbreviation)
	assert.NoError(t, NewFlag("ok", WithFlagShort("x")).validate())
}

func TestOption_Validate(t *testing.T) {
	assert.NoError(t, NewOption("ok").validate())
	assert.ErrorIs(t, NewOption("").validate(), ErrInvalidName)
	assert.NoError(t, NewOption("ok", WithOptionShort("")).validate())
	assert.ErrorIs(t, NewOption("ok", WithOptionShort("ab")).validate(), ErrInvalidAbbreviation)
}
