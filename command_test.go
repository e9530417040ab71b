package argv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFlag_DuplicateName(t *testing.T) {
	root := New("app")
	require.NoError(t, root.AddFlag(NewFlag("verbose")))

	err := root.AddFlag(NewFlag("verbose"))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Len(t, root.Flags(), 1, "the failing flag must not be inserted")
}

func TestAddFlag_InvalidName(t *testing.T) {
	root := New("app")

	assert.ErrorIs(t, root.AddFlag(NewFlag("")), ErrInvalidName)
	assert.ErrorIs(t, root.AddFlag(NewFlag("no spaces")), ErrInvalidName)
	assert.ErrorIs(t, root.AddFlag(NewFlag("no/slash")), ErrInvalidName)
	assert.NoError(t, root.AddFlag(NewFlag("dash-under_score2")))
}

func TestAddFlag_InvalidShort(t *testing.T) {
	root := New("app")

	err := root.AddFlag(NewFlag("verbose", WithFlagShort("vv")))
	assert.ErrorIs(t, err, ErrInvalidAbbreviation)
	assert.Empty(t, root.Flags(), "the failing flag must not be inserted")
}

func TestAddOption_DuplicateName(t *testing.T) {
	root := New("app")
	require.NoError(t, root.AddOption(NewOption("output")))

	err := root.AddOption(NewOption("output"))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Len(t, root.Options(), 1)
}

func TestShortNamespace_SharedAcrossFlagsAndOptions(t *testing.T) {
	root := New("app")
	require.NoError(t, root.AddFlag(NewFlag("verbose", WithFlagShort("v"))))

	err := root.AddOption(NewOption("value", WithOptionShort("v")))
	assert.ErrorIs(t, err, ErrInvalidAbbreviation, "flags and options share one short-form namespace")
	assert.Empty(t, root.Options())

	require.NoError(t, root.AddOption(NewOption("value", WithOptionShort("V"))), "short forms are case sensitive")

	err = root.AddFlag(NewFlag("verify", WithFlagShort("V")))
	assert.ErrorIs(t, err, ErrInvalidAbbreviation, "an option short blocks a later flag short")
}

func TestAddFlag_SameNameAsOption(t *testing.T) {
	root := New("app")
	require.NoError(t, root.AddOption(NewOption("output")))

	assert.NoError(t, root.AddFlag(NewFlag("output")), "flags and options have separate name spaces")
}

func TestAddCommand_ReturnsChild(t *testing.T) {
	root := New("app")
	child, err := root.AddCommand("sub", WithCommandDescription("a sub-command"))
	require.NoError(t, err)

	assert.Equal(t, "sub", child.Name())
	assert.Equal(t, "a sub-command", child.Description())
	assert.Same(t, root, child.Parent())
	assert.Equal(t, []string{"app", "sub"}, child.Path())

	grandchild, err := child.AddCommand("subsub")
	require.NoError(t, err)
	assert.Equal(t, []string{"app", "sub", "subsub"}, grandchild.Path())
}

func TestAddCommand_DuplicateName(t *testing.T) {
	root := New("app")
	_, err := root.AddCommand("sub")
	require.NoError(t, err)

	_, err = root.AddCommand("sub")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Len(t, root.Commands(), 1)
}

func TestCommand_Lookup(t *testing.T) {
	root := New("app")
	sub, err := root.AddCommand("sub")
	require.NoError(t, err)

	found, ok := root.Command("sub")
	assert.True(t, ok)
	assert.Same(t, sub, found)

	_, ok = root.Command("missing")
	assert.False(t, ok)
}

func TestAccessors_DeclarationOrder(t *testing.T) {
	root := New("app")
	require.NoError(t, root.AddFlag(NewFlag("zulu")))
	require.NoError(t, root.AddFlag(NewFlag("alpha")))
	require.NoError(t, root.AddOption(NewOption("mike")))
	require.NoError(t, root.AddOption(NewOption("bravo")))
	root.AddPositional("second").AddPositional("first")

	flags := root.Flags()
	require.Len(t, flags, 2)
	assert.Equal(t, "zulu", flags[0].Name, "declaration order is preserved, not lexical order")
	assert.Equal(t, "alpha", flags[1].Name)

	options := root.Options()
	require.Len(t, options, 2)
	assert.Equal(t, "mike", options[0].Name)
	assert.Equal(t, "bravo", options[1].Name)

	assert.Equal(t, []string{"second", "first"}, root.Positionals())
}

func TestHasCallback(t *testing.T) {
	root := New("app")
	assert.False(t, root.HasCallback())

	root.AttachCallback(func(cmd *Command, result *Result) error { return nil })
	assert.True(t, root.HasCallback())
}
