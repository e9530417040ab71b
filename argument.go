package argv

import (
	"fmt"
	"unicode/utf8"
)

// Flag describes a boolean presence switch: long form --name, optional
// one-character short form -x. A flag never takes a value; seeing it on the
// command line records true, otherwise DefaultValue applies.
type Flag struct {
	Name         string
	Short        string
	Description  string
	Required     bool
	DefaultValue bool
}

// NewFlag convenience initialization method to describe a Flag using option functions.
func NewFlag(name string, configs ...ConfigureFlagFunc) *Flag {
	flag := &Flag{Name: name}
	for _, config := range configs {
		config(flag)
	}

	return flag
}

func (f *Flag) validate() error {
	if !nameRegex.MatchString(f.Name) {
		return fmt.Errorf("%w: flag name %q", ErrInvalidName, f.Name)
	}
	if f.Short != "" && utf8.RuneCountInString(f.Short) != 1 {
		return fmt.Errorf("%w: short form %q must be exactly one character", ErrInvalidAbbreviation, f.Short)
	}

	return nil
}

// Option describes a value-bearing argument accepting either a space-separated
// value (--name value) or an =-joined value (--name=value). DefaultValue is
// optional; nil means the option has no default. Allowed, when non-empty, is
// the closed set of values the option accepts, in declaration order.
type Option struct {
	Name         string
	Short        string
	Description  string
	Required     bool
	DefaultValue *string
	Allowed      []string
}

// NewOption convenience initialization method to describe an Option using option functions.
func NewOption(name string, configs ...ConfigureOptionFunc) *Option {
	option := &Option{Name: name}
	for _, config := range configs {
		config(option)
	}

	return option
}

func (o *Option) validate() error {
	if !nameRegex.MatchString(o.Name) {
		return fmt.Errorf("%w: option name %q", ErrInvalidName, o.Name)
	}
	if o.Short != "" && utf8.RuneCountInString(o.Short) != 1 {
		return fmt.Errorf("%w: short form %q must be exactly one character", ErrInvalidAbbreviation, o.Short)
	}

	return nil
}

// allows reports whether value is acceptable for the option. An empty Allowed
// set accepts everything.
func (o *Option) allows(value string) bool {
	if len(o.Allowed) == 0 {
		return true
	}
	for _, allowed := range o.Allowed {
		if value == allowed {
			return true
		}
	}

	return false
}
