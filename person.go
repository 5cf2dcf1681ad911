package person

import "fmt"

// Person is an immutable, validated person entity.
//
// A Person can only be produced by [Builder.Build] (or the MustBuild/Result
// variants layered on it). Its fields are unexported and there is no exported
// constructor, so every Person in existence has passed the validation rules:
// a non-empty trimmed name and a non-negative age. Person values are plain
// data and are safe to copy and share between goroutines.
type Person struct {
	name string
	age  int
}

// Name returns the person's name.
func (p Person) Name() string {
	return p.name
}

// Age returns the person's age in years.
func (p Person) Age() int {
	return p.age
}

// String implements fmt.Stringer.
func (p Person) String() string {
	return fmt.Sprintf("%s (%d)", p.name, p.age)
}

// Primitive is the untyped record form of a person.
//
// Unlike [Person], a Primitive carries no validity guarantee: it is the shape
// used for serialization and for feeding unchecked data into a builder via
// [FromPrimitive].
type Primitive struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}

// ToPrimitive projects a validated Person back to its untyped record form,
// typically for serialization.
func ToPrimitive(p Person) Primitive {
	return Primitive{
		Name: p.name,
		Age:  p.age,
	}
}
