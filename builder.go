package person

// Builder is a mutable draft of a [Person]. Setters replace field values and
// return the receiver for chaining; validation runs at Validate/Build time
// (or also inside setters under [ValidationModeImmediate]).
//
// A Builder should only be used from a single goroutine.
type Builder struct {
	name string
	age  int

	mode   ValidationMode
	logger StructuredLogger

	// setter-time failures, recorded only in immediate mode
	errs []string
}

// New creates a builder seeded with the given name and age, using the
// default factory (deferred validation, no logging).
func New(name string, age int) *Builder {
	return defaultFactory.New(name, age)
}

// FromPrimitive creates a builder from an untyped record, using the default
// factory. It is equivalent to New(p.Name, p.Age).
func FromPrimitive(p Primitive) *Builder {
	return defaultFactory.FromPrimitive(p)
}

// SetName replaces the draft's name and returns the builder for chaining.
func (b *Builder) SetName(name string) *Builder {
	if b.mode == ValidationModeImmediate {
		if err := ValidateName(name); err != nil {
			b.recordSetterError(err)
		}
	}
	b.name = name
	return b
}

// SetAge replaces the draft's age and returns the builder for chaining.
func (b *Builder) SetAge(age int) *Builder {
	if b.mode == ValidationModeImmediate {
		if err := ValidateAge(age); err != nil {
			b.recordSetterError(err)
		}
	}
	b.age = age
	return b
}

// Name returns the draft's current name.
func (b *Builder) Name() string {
	return b.name
}

// Age returns the draft's current age.
func (b *Builder) Age() int {
	return b.age
}

// IsValid runs the validation rules against the current draft and reports
// whether they all pass, discarding the details.
func (b *Builder) IsValid() bool {
	return b.Validate().Valid
}

// Validate runs every validation rule against the current draft, in rule
// order and without short-circuiting, and returns the outcome.
func (b *Builder) Validate() Result {
	return validateDraft(b.name, b.age)
}

// Build validates the current draft. If any rule fails it returns the zero
// Person and a *ValidationError carrying all rule messages; otherwise it
// returns an immutable Person holding a copy of the draft values.
//
// Build does not consume the builder: the draft keeps its values and may be
// adjusted and built again.
func (b *Builder) Build() (Person, error) {
	res := b.Validate()
	if !res.Valid {
		err := res.Err()
		b.log().Warn("person: build rejected", "errors", res.Errors)
		return Person{}, err
	}
	b.log().Debug("person: built", "name", b.name, "age", b.age)
	return Person{name: b.name, age: b.age}, nil
}

// MustBuild is like Build but panics on validation failure.
// Use only in tests or when validity is guaranteed.
func (b *Builder) MustBuild() Person {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// Result wraps Build in a [BuildResult] that must be unwrapped.
func (b *Builder) Result() BuildResult[Person] {
	return NewBuildResult(b.Build())
}

// HasErrors reports whether any setter-time validation failures have been
// recorded. Only [ValidationModeImmediate] builders record them.
func (b *Builder) HasErrors() bool {
	return len(b.errs) > 0
}

// Errors returns the recorded setter-time failure messages, in the order the
// offending values were set. The record is historical: repairing a field
// afterwards does not remove its entry. Validate and Build judge the draft's
// current state only.
func (b *Builder) Errors() []string {
	return b.errs
}

// ClearErrors discards recorded setter-time failures.
func (b *Builder) ClearErrors() {
	b.errs = nil
}

func (b *Builder) recordSetterError(err error) {
	if valErr, ok := AsValidationError(err); ok {
		b.errs = append(b.errs, valErr.Messages...)
	} else {
		b.errs = append(b.errs, err.Error())
	}
}

func (b *Builder) log() StructuredLogger {
	if b.logger == nil {
		return NopLogger{}
	}
	return b.logger
}
