package argv

// WithCommandDescription the description will be used in usage output presented to the user
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.description = description
	}
}

// WithCallback attaches a callback invoked during Run() when the command is
// the entry node or was descended into. A command holds a single callback;
// configuring another replaces it.
func WithCallback(callback CommandFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.callback = callback
	}
}
