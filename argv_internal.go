package argv

import (
	"fmt"
	"strings"

	"github.com/marcomit/argv/parse"
)

// parseContext carries the state of one token-list traversal: the node the
// operation was invoked on, the node currently being matched against, the
// nodes visited along the descent (entry node first) and the count of
// positional slots filled per node.
type parseContext struct {
	current *Command
	visited []*Command
	filled  map[*Command]int
	result  *Result
}

// parseTokens classifies every token, in strict priority order: sub-command
// descent, flag match, option match, positional fallback. A token is
// classified exactly once; there is no backtracking, so a value consumed by
// an option is never reinterpreted even when it looks like a flag.
func (c *Command) parseTokens(state parse.State) (*parseContext, error) {
	ctx := &parseContext{
		current: c,
		visited: []*Command{c},
		filled:  map[*Command]int{},
		result:  newResult(),
	}

	for state.Advance() {
		token := state.CurrentArg()
		if ctx.matchCommand(token) {
			continue
		}
		if ctx.matchFlag(token) {
			continue
		}
		matched, err := ctx.matchOption(state)
		if err != nil {
			return nil, err
		}
		if matched {
			continue
		}
		if ctx.fillPositional(token) {
			continue
		}

		return nil, ctx.unknownArgument(token)
	}

	return ctx, nil
}

// matchCommand descends into a sub-command of the current node when the token
// names one, recording the step on the command path.
func (x *parseContext) matchCommand(token string) bool {
	child, ok := x.current.commands.Get(token)
	if !ok {
		return false
	}
	x.current = child
	x.visited = append(x.visited, child)
	x.result.path = append(x.result.path, child.name)

	return true
}

// matchFlag compares the token against every flag of the current node using
// exact matches on --name and -short. Every flag of the node not yet present
// in the result picks up its default here, whether or not the token matched;
// the fill is idempotent since a recorded flag is skipped on later passes.
func (x *parseContext) matchFlag(token string) bool {
	matched := false
	for pair := x.current.flags.Oldest(); pair != nil; pair = pair.Next() {
		flag := pair.Value
		if token == "--"+flag.Name || (flag.Short != "" && token == "-"+flag.Short) {
			x.result.flags[flag.Name] = true
			matched = true
		} else if _, seen := x.result.flags[flag.Name]; !seen {
			x.result.flags[flag.Name] = flag.DefaultValue
		}
	}

	return matched
}

// matchOption matches the token against the options of the current node. The
// value is taken from the text after the first '=' when present (the empty
// string is a valid value), otherwise from the next token, consuming it.
// When no next token exists the declared default applies; an option with
// neither is an error.
func (x *parseContext) matchOption(state parse.State) (bool, error) {
	token := state.CurrentArg()
	name, value, hasValue := token, "", false
	if i := strings.IndexByte(token, '='); i >= 0 {
		name, value, hasValue = token[:i], token[i+1:], true
	}

	option := x.lookupOption(name)
	if option == nil {
		return false, nil
	}

	if !hasValue {
		switch {
		case state.HasNext():
			state.Skip()
			value = state.CurrentArg()
		case option.DefaultValue != nil:
			value = *option.DefaultValue
		default:
			return false, fmt.Errorf("%w: option %q expects a value", ErrMissingOptionValue, option.Name)
		}
	}

	if !option.allows(value) {
		return false, fmt.Errorf("%w: %q is not allowed for option %q (allowed: %s)",
			ErrDisallowedValue, value, option.Name, strings.Join(option.Allowed, ", "))
	}
	x.result.options[option.Name] = value

	return true, nil
}

func (x *parseContext) lookupOption(name string) *Option {
	for pair := x.current.options.Oldest(); pair != nil; pair = pair.Next() {
		option := pair.Value
		if name == "--"+option.Name || (option.Short != "" && name == "-"+option.Short) {
			return option
		}
	}

	return nil
}

// fillPositional assigns the token to the next unfilled positional slot of
// the current node, in declaration order.
func (x *parseContext) fillPositional(token string) bool {
	filled := x.filled[x.current]
	if filled >= len(x.current.positionals) {
		return false
	}
	x.result.positionals[x.current.positionals[filled]] = token
	x.filled[x.current] = filled + 1

	return true
}

func (x *parseContext) unknownArgument(token string) error {
	if suggestion := closestMatch(token, x.current.suggestionCandidates()); suggestion != "" {
		return fmt.Errorf("%w: %s. Did you mean %s?", ErrUnknownArgument, token, suggestion)
	}

	return fmt.Errorf("%w: %s", ErrUnknownArgument, token)
}

// validate runs once after the token list is consumed, against every node on
// the descent path, entry node first. Required flags and options must be
// present by now, remaining defaults are filled in, allowed sets are
// re-checked for values injected via defaults, and every declared positional
// slot must have been filled.
func (x *parseContext) validate() error {
	for _, node := range x.visited {
		for pair := node.flags.Oldest(); pair != nil; pair = pair.Next() {
			flag := pair.Value
			if _, seen := x.result.flags[flag.Name]; seen {
				continue
			}
			if flag.Required {
				return fmt.Errorf("%w: --%s", ErrRequiredFlagMissing, flag.Name)
			}
			x.result.flags[flag.Name] = flag.DefaultValue
		}

		for pair := node.options.Oldest(); pair != nil; pair = pair.Next() {
			option := pair.Value
			value, seen := x.result.options[option.Name]
			if !seen {
				if option.DefaultValue == nil {
					if option.Required {
						return fmt.Errorf("%w: --%s", ErrRequiredOptionMissing, option.Name)
					}
					continue
				}
				value = *option.DefaultValue
				x.result.options[option.Name] = value
			}
			if !option.allows(value) {
				return fmt.Errorf("%w: %q is not allowed for option %q (allowed: %s)",
					ErrDisallowedValue, value, option.Name, strings.Join(option.Allowed, ", "))
			}
		}

		if filled := x.filled[node]; filled < len(node.positionals) {
			return fmt.Errorf("%w: %s", ErrMissingPositionals, strings.Join(node.positionals[filled:], ", "))
		}
	}

	return nil
}
