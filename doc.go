// Package person provides an immutable, validated person entity constructed
// through a fluent builder.
//
// The point of the package is the construction guarantee: a [Person] has
// unexported fields and no exported constructor, so the only way to obtain
// one is through a builder's [Builder.Build]. Every Person in existence has
// therefore passed the validation rules at construction time.
//
// # Quick Start
//
// Create a draft, adjust it, and build:
//
//	p, err := person.New("John", 20).
//	    SetAge(30).
//	    SetName("John Smith").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Name(), p.Age()) // John Smith 30
//
// # Validation
//
// Two rules apply, in order, and every failure is collected:
//
//   - the name must be non-empty after trimming whitespace
//   - the age must be non-negative
//
// Callers wishing to avoid an error from Build can check first:
//
//	b := person.New("", -1)
//	if res := b.Validate(); !res.Valid {
//	    fmt.Println(res.Errors)
//	    // [Name cannot be empty. Age cannot be negative.]
//	}
//
// Build failures carry a [*ValidationError] with all rule messages, and
// match [ErrInvalidPerson] via errors.Is.
//
// # Primitives
//
// [Primitive] is the untyped record form, used to round-trip through
// serialization:
//
//	b := person.FromPrimitive(person.Primitive{Name: "Alice", Age: 18})
//	p, _ := b.Build()
//	rec := person.ToPrimitive(p) // {Alice 18}
//
// [DecodeYAML], [DecodeJSON], [EncodeYAML] and [EncodeJSON] convert between
// byte documents and builders/entities.
//
// # Factories
//
// The package-level [New] and [FromPrimitive] use a default factory with
// deferred validation and no logging. A configured [Factory] can enable
// immediate setter-time validation and structured logging:
//
//	factory := person.NewFactory(
//	    person.WithValidationMode(person.ValidationModeImmediate),
//	    person.WithLogger(person.NewSlogAdapter(slog.Default())),
//	)
//
// # Thread Safety
//
// Person and Primitive values are plain data and safe to share. A Builder
// is a mutable draft and should only be used from a single goroutine.
package person
