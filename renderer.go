package argv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcomit/argv/util"
)

// defaultUsageWidth is used when stdout is not a terminal.
const defaultUsageWidth = 80

// Renderer formats usage text over an argument tree. It only reads the tree's
// declared shape and never affects parsing or validation.
type Renderer struct {
	cmd   *Command
	width int
}

// NewRenderer creates a Renderer for the tree rooted at cmd, sized to the
// terminal attached to stdout when there is one.
func NewRenderer(cmd *Command) *Renderer {
	return &Renderer{
		cmd:   cmd,
		width: util.TerminalWidth(os.Stdout, defaultUsageWidth),
	}
}

// FlagUsage generates a usage string for a flag: the long form, the short
// form if available, the description and whether the flag is required.
func (r *Renderer) FlagUsage(f *Flag) string {
	usage := "--" + f.Name
	if f.Short != "" {
		usage += " or -" + f.Short
	}
	if f.Description != "" {
		usage += " \"" + f.Description + "\""
	}

	return usage + " " + requiredOrOptional(f.Required)
}

// OptionUsage generates a usage string for an option, including its default
// value and allowed set when declared.
func (r *Renderer) OptionUsage(o *Option) string {
	usage := "--" + o.Name
	if o.Short != "" {
		usage += " or -" + o.Short
	}
	if o.Description != "" {
		usage += " \"" + o.Description + "\""
	}
	if o.DefaultValue != nil {
		usage += fmt.Sprintf(" (defaults to: %s)", *o.DefaultValue)
	}
	if len(o.Allowed) > 0 {
		usage += fmt.Sprintf(" (one of: %s)", strings.Join(o.Allowed, ", "))
	}

	return usage + " " + requiredOrOptional(o.Required)
}

// CommandUsage generates a one-line usage string for a command.
func (r *Renderer) CommandUsage(c *Command) string {
	usage := c.name
	if c.description != "" {
		usage += " \"" + c.description + "\""
	}

	return usage
}

// Usage renders the full tree: the root line, positional slots, flags,
// options and sub-commands, recursively indented one level per depth. Lines
// are truncated to the terminal width.
func (r *Renderer) Usage() string {
	var sb strings.Builder
	r.renderCommand(&sb, r.cmd, 0)

	return sb.String()
}

// PrintUsage writes Usage to w.
func (r *Renderer) PrintUsage(w io.Writer) {
	_, _ = io.WriteString(w, r.Usage())
}

func (r *Renderer) renderCommand(sb *strings.Builder, c *Command, level int) {
	indent := strings.Repeat(" ", level)
	r.line(sb, indent, r.CommandUsage(c))
	if positionals := c.Positionals(); len(positionals) > 0 {
		r.line(sb, indent, " positionals: "+strings.Join(positionals, " "))
	}
	for _, f := range c.Flags() {
		r.line(sb, indent, " "+r.FlagUsage(f))
	}
	for _, o := range c.Options() {
		r.line(sb, indent, " "+r.OptionUsage(o))
	}
	for _, child := range c.Commands() {
		r.renderCommand(sb, child, level+1)
	}
}

func (r *Renderer) line(sb *strings.Builder, indent, text string) {
	sb.WriteString(util.Truncate(indent+text, r.width))
	sb.WriteString("\n")
}

func requiredOrOptional(required bool) string {
	if required {
		return "(required)"
	}

	return "(optional)"
}
