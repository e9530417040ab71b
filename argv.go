// Package argv provides declarative command-line argument processing.
//
// A grammar is described as a tree of commands. Each command owns three kinds
// of argument definitions:
//
//	Flag - a boolean presence switch (--verbose or -v)
//	Option - a value-bearing argument (--output file, --output=file)
//	Positional - an unnamed argument assigned by order, not by syntax
//
// Commands nest to arbitrary depth to represent sub-commands. Feeding a raw
// token list through Parse descends into sub-commands as their names are
// recognized, classifies every remaining token, enforces required fields,
// defaults and allowed-value sets, and returns a typed Result. Run
// additionally invokes the callbacks attached to the commands on the
// descended path.
//
// All processing is synchronous and allocates no shared state: distinct trees
// may be used concurrently from different goroutines, while building and
// parsing one tree at the same time is undefined.
package argv

import (
	"github.com/marcomit/argv/parse"
	"github.com/marcomit/argv/types/queue"
)

// Parse consumes the raw token list against the tree rooted at c, validates
// the accumulated result and returns it. On any definition mismatch in the
// token list, or any unmet constraint after the list is consumed, Parse
// returns a nil Result and the error describing the first offense.
func (c *Command) Parse(args []string) (*Result, error) {
	ctx, err := c.parseTokens(parse.NewState(args))
	if err != nil {
		return nil, err
	}
	if err := ctx.validate(); err != nil {
		return nil, err
	}

	return ctx.result, nil
}

// ParseString splits argString with shell-style quoting rules and calls Parse.
func (c *Command) ParseString(argString string) (*Result, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return c.Parse(args)
}

// Run parses and validates args, then dispatches command callbacks: first the
// callback attached to c, then the callback of every command descended into,
// in descent order, all sharing the returned Result. The first callback error
// stops dispatch and is returned alongside the result.
func (c *Command) Run(args []string) (*Result, error) {
	result, err := c.Parse(args)
	if err != nil {
		return nil, err
	}

	return result, c.dispatch(result)
}

// RunString splits argString with shell-style quoting rules and calls Run.
func (c *Command) RunString(argString string) (*Result, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return c.Run(args)
}

// dispatch queues the entry command's callback and the callback of each
// command on the recorded path, then drains the queue in FIFO order. The walk
// re-resolves each recorded name and stops early if one no longer resolves,
// which only happens when the tree was mutated after parsing.
func (c *Command) dispatch(result *Result) error {
	pending := queue.New[commandCallback]()
	if c.callback != nil {
		pending.Enqueue(commandCallback{command: c, callback: c.callback})
	}
	node := c
	for _, name := range result.path {
		child, ok := node.commands.Get(name)
		if !ok {
			break
		}
		if child.callback != nil {
			pending.Enqueue(commandCallback{command: child, callback: child.callback})
		}
		node = child
	}

	for pending.Len() > 0 {
		call, _ := pending.Dequeue()
		if err := call.callback(call.command, result); err != nil {
			return err
		}
	}

	return nil
}
