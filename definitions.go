package argv

import (
	"errors"
	"regexp"
)

// CommandFunc callback - optionally attached to a Command and invoked during Run()
// with the validated parse result. Returning a non-nil error stops dispatch.
type CommandFunc func(cmd *Command, result *Result) error

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureFlagFunc is used when defining Flag definitions
type ConfigureFlagFunc func(flag *Flag)

// ConfigureOptionFunc is used when defining Option definitions
type ConfigureOptionFunc func(option *Option)

var (
	// ErrDuplicateName is returned by builder calls when a flag, option or
	// sub-command name is already taken on the node.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrInvalidName is returned when a name is empty or contains characters
	// outside [A-Za-z0-9_-].
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidAbbreviation is returned when a short form is not exactly one
	// character or collides with another short form on the node.
	ErrInvalidAbbreviation = errors.New("invalid abbreviation")
	// ErrMissingOptionValue is returned when an option is the last token and
	// declares no default.
	ErrMissingOptionValue = errors.New("missing option value")
	// ErrDisallowedValue is returned when an option value is not a member of
	// the option's allowed set.
	ErrDisallowedValue = errors.New("disallowed value")
	// ErrUnknownArgument is returned for tokens which match no command, flag,
	// option or free positional slot.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrRequiredFlagMissing is returned after parsing when a required flag
	// was never seen.
	ErrRequiredFlagMissing = errors.New("required flag missing")
	// ErrRequiredOptionMissing is returned after parsing when a required
	// option without a default was never seen.
	ErrRequiredOptionMissing = errors.New("required option missing")
	// ErrMissingPositionals is returned after parsing when declared positional
	// slots are left unfilled.
	ErrMissingPositionals = errors.New("missing positional arguments")
	// ErrOptionNotSet is returned by the typed Result accessors when the
	// option is absent and has no default.
	ErrOptionNotSet = errors.New("option not set")
)

// nameRegex constrains flag and option names. The + makes empty names invalid
// without a separate check.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type commandCallback struct {
	command  *Command
	callback CommandFunc
}
