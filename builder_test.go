package person

import (
	"strings"
	"testing"
)

func TestBuilder_Chaining(t *testing.T) {
	p, err := New("John", 20).SetAge(30).SetName("John Smith").Build()
	if err != nil {
		t.Fatalf("Build() err = %v, want nil", err)
	}
	if p.Name() != "John Smith" {
		t.Errorf("Name() = %q, want 'John Smith'", p.Name())
	}
	if p.Age() != 30 {
		t.Errorf("Age() = %d, want 30", p.Age())
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Run("valid values succeed", func(t *testing.T) {
		cases := []struct {
			name string
			age  int
		}{
			{"Alice", 18},
			{"B", 0},
			{"  padded  ", 120},
			{"José", 1},
		}
		for _, tc := range cases {
			p, err := New(tc.name, tc.age).Build()
			if err != nil {
				t.Errorf("Build(%q, %d) err = %v, want nil", tc.name, tc.age, err)
				continue
			}
			if p.Name() != tc.name {
				t.Errorf("Name() = %q, want %q", p.Name(), tc.name)
			}
			if p.Age() != tc.age {
				t.Errorf("Age() = %d, want %d", p.Age(), tc.age)
			}
		}
	})

	t.Run("negative age fails with message", func(t *testing.T) {
		_, err := New("Bob", -10).Build()
		if err == nil {
			t.Fatal("Build() err = nil, want error")
		}
		if !strings.Contains(err.Error(), "Age cannot be negative.") {
			t.Errorf("error %q should contain 'Age cannot be negative.'", err.Error())
		}
	})

	t.Run("invalid build returns zero person", func(t *testing.T) {
		p, err := New("", 5).Build()
		if err == nil {
			t.Fatal("Build() err = nil, want error")
		}
		if p != (Person{}) {
			t.Errorf("Build() person = %+v, want zero value", p)
		}
	})

	t.Run("builder stays usable after failed build", func(t *testing.T) {
		b := New("", -1)
		if _, err := b.Build(); err == nil {
			t.Fatal("first Build() should fail")
		}
		p, err := b.SetName("Eve").SetAge(1).Build()
		if err != nil {
			t.Fatalf("second Build() err = %v, want nil", err)
		}
		if p.Name() != "Eve" || p.Age() != 1 {
			t.Errorf("second Build() = %v, want Eve (1)", p)
		}
	})

	t.Run("built person is a copy of the draft", func(t *testing.T) {
		b := New("Ada", 36)
		p := b.MustBuild()
		b.SetName("changed").SetAge(99)
		if p.Name() != "Ada" || p.Age() != 36 {
			t.Errorf("person = %v, want Ada (36) after mutating the builder", p)
		}
	})
}

func TestBuilder_Validate(t *testing.T) {
	t.Run("collects all failures in rule order", func(t *testing.T) {
		res := New("", -1).Validate()
		if res.Valid {
			t.Error("Validate().Valid = true, want false")
		}
		want := []string{"Name cannot be empty.", "Age cannot be negative."}
		if len(res.Errors) != len(want) {
			t.Fatalf("Errors = %v, want %v", res.Errors, want)
		}
		for i := range want {
			if res.Errors[i] != want[i] {
				t.Errorf("Errors[%d] = %q, want %q", i, res.Errors[i], want[i])
			}
		}
	})

	t.Run("valid draft has no messages", func(t *testing.T) {
		res := New("Alice", 18).Validate()
		if !res.Valid {
			t.Errorf("Validate().Valid = false, want true (errors: %v)", res.Errors)
		}
		if len(res.Errors) != 0 {
			t.Errorf("Errors = %v, want empty", res.Errors)
		}
	})

	t.Run("whitespace-only name fails", func(t *testing.T) {
		res := New("   \t ", 10).Validate()
		if res.Valid {
			t.Error("Validate().Valid = true, want false for whitespace name")
		}
		if len(res.Errors) != 1 || res.Errors[0] != "Name cannot be empty." {
			t.Errorf("Errors = %v, want [Name cannot be empty.]", res.Errors)
		}
	})
}

func TestBuilder_IsValid(t *testing.T) {
	cases := []struct {
		label string
		name  string
		age   int
		want  bool
	}{
		{"valid", "Alice", 18, true},
		{"zero age", "Alice", 0, true},
		{"empty name", "", 18, false},
		{"whitespace name", "  ", 18, false},
		{"negative age", "Alice", -1, false},
		{"both invalid", "", -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if got := New(tc.name, tc.age).IsValid(); got != tc.want {
				t.Errorf("New(%q, %d).IsValid() = %v, want %v", tc.name, tc.age, got, tc.want)
			}
		})
	}
}

func TestBuilder_MustBuild(t *testing.T) {
	t.Run("returns person when valid", func(t *testing.T) {
		p := New("Alice", 18).MustBuild()
		if p.Name() != "Alice" || p.Age() != 18 {
			t.Errorf("MustBuild() = %v, want Alice (18)", p)
		}
	})

	t.Run("panics when invalid", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustBuild() should panic on invalid draft")
			}
		}()
		New("", -1).MustBuild()
	})
}

func TestBuilder_Result(t *testing.T) {
	t.Run("ok for valid draft", func(t *testing.T) {
		result := New("Alice", 18).Result()
		if !result.Ok() {
			t.Fatalf("Result().Ok() = false, want true (err: %v)", result.Err())
		}
		p, err := result.Unwrap()
		if err != nil {
			t.Fatalf("Unwrap() err = %v, want nil", err)
		}
		if p.Name() != "Alice" {
			t.Errorf("Name() = %q, want 'Alice'", p.Name())
		}
	})

	t.Run("error for invalid draft", func(t *testing.T) {
		result := New("Bob", -10).Result()
		if result.Ok() {
			t.Error("Result().Ok() = true, want false")
		}
		if result.Err() == nil {
			t.Error("Result().Err() = nil, want error")
		}
	})
}

func TestBuilder_DraftAccessors(t *testing.T) {
	b := New("John", 20)
	if b.Name() != "John" {
		t.Errorf("Name() = %q, want 'John'", b.Name())
	}
	if b.Age() != 20 {
		t.Errorf("Age() = %d, want 20", b.Age())
	}
	b.SetName("Jane").SetAge(21)
	if b.Name() != "Jane" || b.Age() != 21 {
		t.Errorf("draft = %q/%d, want Jane/21", b.Name(), b.Age())
	}
}

func TestFromPrimitive(t *testing.T) {
	t.Run("valid record is valid", func(t *testing.T) {
		if !FromPrimitive(Primitive{Name: "Alice", Age: 18}).IsValid() {
			t.Error("IsValid() = false, want true")
		}
	})

	t.Run("zero record is invalid", func(t *testing.T) {
		if FromPrimitive(Primitive{}).IsValid() {
			t.Error("IsValid() = true, want false for zero record")
		}
	})

	t.Run("equivalent to New", func(t *testing.T) {
		a := FromPrimitive(Primitive{Name: "Bob", Age: 3}).MustBuild()
		b := New("Bob", 3).MustBuild()
		if a != b {
			t.Errorf("FromPrimitive build = %v, New build = %v, want equal", a, b)
		}
	})
}

func TestBuilder_ImmediateMode(t *testing.T) {
	factory := NewFactory(WithValidationMode(ValidationModeImmediate))

	t.Run("setters record failures", func(t *testing.T) {
		b := factory.New("Ada", 36).SetName("").SetAge(-1)
		if !b.HasErrors() {
			t.Fatal("HasErrors() = false, want true")
		}
		want := []string{"Name cannot be empty.", "Age cannot be negative."}
		got := b.Errors()
		if len(got) != len(want) {
			t.Fatalf("Errors() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Errors()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("record is historical, build judges current state", func(t *testing.T) {
		b := factory.New("Ada", 36).SetAge(-1).SetAge(5)
		if !b.HasErrors() {
			t.Error("HasErrors() = false, want true after invalid set")
		}
		if _, err := b.Build(); err != nil {
			t.Errorf("Build() err = %v, want nil for repaired draft", err)
		}
	})

	t.Run("ClearErrors discards the record", func(t *testing.T) {
		b := factory.New("Ada", 36).SetAge(-1)
		b.ClearErrors()
		if b.HasErrors() {
			t.Error("HasErrors() = true after ClearErrors()")
		}
	})

	t.Run("seeding does not record", func(t *testing.T) {
		b := factory.New("", -1)
		if b.HasErrors() {
			t.Error("HasErrors() = true for freshly seeded builder, want false")
		}
		if b.IsValid() {
			t.Error("IsValid() = true, want false")
		}
	})
}

func TestBuilder_DeferredModeRecordsNothing(t *testing.T) {
	b := New("Ada", 36).SetName("").SetAge(-1)
	if b.HasErrors() {
		t.Error("HasErrors() = true in deferred mode, want false")
	}
	if b.IsValid() {
		t.Error("IsValid() = true, want false")
	}
}
