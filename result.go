package argv

import (
	"fmt"
	"time"

	"github.com/marcomit/argv/util"
)

// Result accumulates a single parse: flag values, option values, the sequence
// of command names descended into and the values bound to positional slots.
// A Result is created per Parse/Run invocation and never shared between
// invocations.
type Result struct {
	flags       map[string]bool
	options     map[string]string
	positionals map[string]string
	path        []string
}

func newResult() *Result {
	return &Result{
		flags:       map[string]bool{},
		options:     map[string]string{},
		positionals: map[string]string{},
	}
}

// Flag returns the recorded value of a flag. Absent flags read as false.
func (r *Result) Flag(name string) bool {
	return r.flags[name]
}

// Option returns the recorded value of an option and whether it was set
// (explicitly or through a default).
func (r *Result) Option(name string) (string, bool) {
	value, ok := r.options[name]

	return value, ok
}

// Positional returns the value bound to a positional slot and whether the
// slot was filled.
func (r *Result) Positional(name string) (string, bool) {
	value, ok := r.positionals[name]

	return value, ok
}

// Path returns the command names descended into during parsing, in order.
func (r *Result) Path() []string {
	path := make([]string, len(r.path))
	copy(path, r.path)

	return path
}

// OptionBool converts the option's value to a bool.
func (r *Result) OptionBool(name string) (bool, error) {
	var out bool
	err := r.convertOption(name, &out)

	return out, err
}

// OptionInt converts the option's value to an int.
func (r *Result) OptionInt(name string) (int, error) {
	var out int
	err := r.convertOption(name, &out)

	return out, err
}

// OptionInt64 converts the option's value to an int64.
func (r *Result) OptionInt64(name string) (int64, error) {
	var out int64
	err := r.convertOption(name, &out)

	return out, err
}

// OptionFloat64 converts the option's value to a float64.
func (r *Result) OptionFloat64(name string) (float64, error) {
	var out float64
	err := r.convertOption(name, &out)

	return out, err
}

// OptionTime converts the option's value to a time.Time. Most common date and
// time layouts are recognized.
func (r *Result) OptionTime(name string) (time.Time, error) {
	var out time.Time
	err := r.convertOption(name, &out)

	return out, err
}

// OptionDuration converts the option's value to a time.Duration.
func (r *Result) OptionDuration(name string) (time.Duration, error) {
	var out time.Duration
	err := r.convertOption(name, &out)

	return out, err
}

func (r *Result) convertOption(name string, out any) error {
	value, ok := r.Option(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOptionNotSet, name)
	}

	return util.ConvertString(value, out)
}
