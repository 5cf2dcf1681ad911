package person

// Factory is a configured source of builders. It carries the validation mode
// and logger that every builder it creates inherits.
//
// The zero-configuration path is the package-level [New] and
// [FromPrimitive], which use a default factory with deferred validation and
// no logging. Construct a Factory when you want immediate validation or
// structured log output:
//
//	factory := person.NewFactory(
//	    person.WithValidationMode(person.ValidationModeImmediate),
//	    person.WithLogger(person.NewSlogAdapter(slog.Default())),
//	)
//	p, err := factory.New("Ada", 36).Build()
type Factory struct {
	mode   ValidationMode
	logger StructuredLogger
}

var defaultFactory = NewFactory()

// NewFactory creates a factory with the given options.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		mode:   ValidationModeDeferred,
		logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// New creates a builder seeded with the given name and age. Seeding does not
// run validation in any mode; rules apply to setters and to Validate/Build.
func (f *Factory) New(name string, age int) *Builder {
	f.logger.Debug("person: draft created", "name", name, "age", age)
	return &Builder{
		name:   name,
		age:    age,
		mode:   f.mode,
		logger: f.logger,
	}
}

// FromPrimitive creates a builder from an untyped record.
// It is equivalent to New(p.Name, p.Age).
func (f *Factory) FromPrimitive(p Primitive) *Builder {
	return f.New(p.Name, p.Age)
}
