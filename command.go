package argv

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Command is one level of a nested command tree. A node owns its flag, option
// and positional definitions and its sub-commands; the parent reference is
// non-owning and only used for path queries. Nodes are created through New and
// AddCommand, configured through the builder methods, and are expected to be
// fully built before the first Parse or Run call. Mutating a tree while
// parsing it is undefined.
type Command struct {
	name        string
	description string
	flags       *orderedmap.OrderedMap[string, *Flag]
	options     *orderedmap.OrderedMap[string, *Option]
	positionals []string
	commands    *orderedmap.OrderedMap[string, *Command]
	callback    CommandFunc
	parent      *Command
}

// New creates a root command node.
func New(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		name:     name,
		flags:    orderedmap.New[string, *Flag](),
		options:  orderedmap.New[string, *Option](),
		commands: orderedmap.New[string, *Command](),
	}
	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// AddFlag registers a flag on the command. The flag is rejected, leaving the
// command untouched, when its name is invalid or already taken, or when its
// short form is malformed or collides with any flag or option short form on
// this command.
func (c *Command) AddFlag(flag *Flag) error {
	if err := flag.validate(); err != nil {
		return err
	}
	if _, exists := c.flags.Get(flag.Name); exists {
		return fmt.Errorf("%w: flag %q already defined on command %q", ErrDuplicateName, flag.Name, c.name)
	}
	if err := c.checkShort(flag.Short); err != nil {
		return err
	}
	c.flags.Set(flag.Name, flag)

	return nil
}

// AddOption registers an option on the command, under the same naming and
// short-form rules as AddFlag. Flags and options share one short-form
// namespace per command.
func (c *Command) AddOption(option *Option) error {
	if err := option.validate(); err != nil {
		return err
	}
	if _, exists := c.options.Get(option.Name); exists {
		return fmt.Errorf("%w: option %q already defined on command %q", ErrDuplicateName, option.Name, c.name)
	}
	if err := c.checkShort(option.Short); err != nil {
		return err
	}
	c.options.Set(option.Name, option)

	return nil
}

// AddPositional appends a positional slot. Slots are matched strictly by
// declaration order. Positional names are keys in the parse result, so a
// repeated name silently overwrites the earlier slot's value - avoiding that
// is the caller's responsibility.
func (c *Command) AddPositional(name string) *Command {
	c.positionals = append(c.positionals, name)

	return c
}

// AddCommand creates a sub-command and returns it, so configuration calls can
// chain directly onto the new node.
func (c *Command) AddCommand(name string, configs ...ConfigureCommandFunc) (*Command, error) {
	if _, exists := c.commands.Get(name); exists {
		return nil, fmt.Errorf("%w: command %q already defined on command %q", ErrDuplicateName, name, c.name)
	}
	child := New(name, configs...)
	child.parent = c
	c.commands.Set(name, child)

	return child, nil
}

// AttachCallback stores the command's callback. A command holds a single
// callback; attaching another replaces the previous one.
func (c *Command) AttachCallback(callback CommandFunc) *Command {
	c.callback = callback

	return c
}

// checkShort enforces the per-command short-form namespace shared by flags and
// options.
func (c *Command) checkShort(short string) error {
	if short == "" {
		return nil
	}
	for pair := c.flags.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Short == short {
			return fmt.Errorf("%w: short form %q already used by flag %q", ErrInvalidAbbreviation, short, pair.Value.Name)
		}
	}
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Short == short {
			return fmt.Errorf("%w: short form %q already used by option %q", ErrInvalidAbbreviation, short, pair.Value.Name)
		}
	}

	return nil
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.name
}

// Description returns the command description.
func (c *Command) Description() string {
	return c.description
}

// Flags returns the command's flags in declaration order.
func (c *Command) Flags() []*Flag {
	flags := make([]*Flag, 0, c.flags.Len())
	for pair := c.flags.Oldest(); pair != nil; pair = pair.Next() {
		flags = append(flags, pair.Value)
	}

	return flags
}

// Options returns the command's options in declaration order.
func (c *Command) Options() []*Option {
	options := make([]*Option, 0, c.options.Len())
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		options = append(options, pair.Value)
	}

	return options
}

// Positionals returns the names of the positional slots in declaration order.
func (c *Command) Positionals() []string {
	positionals := make([]string, len(c.positionals))
	copy(positionals, c.positionals)

	return positionals
}

// Commands returns the sub-commands in declaration order.
func (c *Command) Commands() []*Command {
	commands := make([]*Command, 0, c.commands.Len())
	for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
		commands = append(commands, pair.Value)
	}

	return commands
}

// Command returns the sub-command with the given name.
func (c *Command) Command(name string) (*Command, bool) {
	return c.commands.Get(name)
}

// Parent returns the command's parent, nil for a root.
func (c *Command) Parent() *Command {
	return c.parent
}

// HasCallback reports whether a callback is attached to the command.
func (c *Command) HasCallback() bool {
	return c.callback != nil
}

// Path returns the command names from the root down to this command.
func (c *Command) Path() []string {
	var path []string
	for node := c; node != nil; node = node.parent {
		path = append(path, node.name)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
