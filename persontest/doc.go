// Package persontest provides testing utilities for code using the person
// package.
//
// # Fixtures
//
// Canned primitives and a helper that fails the test instead of returning an
// error:
//
//	func TestGreeting(t *testing.T) {
//	    p := persontest.Valid(t) // Ada Lovelace, 36
//	    got := Greet(p)
//	    // ...
//	}
//
// # Recording logger
//
// RecordingLogger captures structured log calls for assertions:
//
//	logger := persontest.NewRecordingLogger()
//	factory := person.NewFactory(person.WithLogger(logger))
//	factory.New("", -1).Build()
//
//	if logger.Count("WARN") == 0 {
//	    t.Error("expected a warning for the rejected build")
//	}
package persontest
