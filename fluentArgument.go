package argv

// WithFlagShort sets the one-character short form of a flag, used on the
// command line as -x.
func WithFlagShort(short string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Short = short
	}
}

// WithFlagDescription the description will be used in usage output presented to the user
func WithFlagDescription(description string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Description = description
	}
}

// SetFlagRequired when true, the flag must be supplied on the command line
func SetFlagRequired(required bool) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Required = required
	}
}

// WithFlagDefault sets the value recorded for the flag when it is not seen on
// the command line.
func WithFlagDefault(defaultValue bool) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.DefaultValue = defaultValue
	}
}

// WithOptionShort sets the one-character short form of an option, used on the
// command line as -x.
func WithOptionShort(short string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Short = short
	}
}

// WithOptionDescription the description will be used in usage output presented to the user
func WithOptionDescription(description string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Description = description
	}
}

// SetOptionRequired when true, the option must be supplied on the command line
// unless it declares a default
func SetOptionRequired(required bool) ConfigureOptionFunc {
	return func(option *Option) {
		option.Required = required
	}
}

// WithOptionDefault declares a default value for the option. Declaring a
// default makes a required option satisfiable without being passed.
func WithOptionDefault(defaultValue string) ConfigureOptionFunc {
	return func(option *Option) {
		option.DefaultValue = &defaultValue
	}
}

// WithAllowed restricts the option to the given values. Order is preserved for
// usage output. Passing no values leaves the option unconstrained.
func WithAllowed(values ...string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Allowed = values
	}
}
