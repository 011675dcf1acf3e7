package validate_test

import (
	"testing"

	"github.com/emvolvovsky-bot/PetMatch/internal/validate"
)

type validStruct struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestCheck_Valid(t *testing.T) {
	v := validStruct{Name: "Alice", Email: "alice@example.com"}
	if err := validate.Check(&v); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheck_MissingRequired(t *testing.T) {
	v := validStruct{Email: "alice@example.com"}
	err := validate.Check(&v)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}

	fe := validate.GetFieldErrors(err)
	if fe == nil {
		t.Fatal("expected FieldErrors")
	}

	fields := fe.Fields()
	if _, ok := fields["name"]; !ok {
		t.Fatalf("expected 'name' field error, got %v", fields)
	}
	if fields["name"] != "This field is required" {
		t.Fatalf("name error = %q, want %q", fields["name"], "This field is required")
	}
}

func TestCheck_InvalidField(t *testing.T) {
	v := validStruct{Name: "Alice", Email: "not-an-email"}
	err := validate.Check(&v)
	if err == nil {
		t.Fatal("expected error for invalid email")
	}

	fe := validate.GetFieldErrors(err)
	if fe == nil {
		t.Fatal("expected FieldErrors")
	}

	fields := fe.Fields()
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected 'email' field error, got %v", fields)
	}
}

func TestFieldErrors_Error(t *testing.T) {
	fe := validate.FieldErrors{
		{Field: "name", Err: "This field is required"},
		{Field: "email", Err: "email must be a valid email address"},
	}

	want := "name: This field is required; email: email must be a valid email address"
	if fe.Error() != want {
		t.Fatalf("Error() = %q, want %q", fe.Error(), want)
	}
}

func TestCheck_NonStruct(t *testing.T) {
	s := "just a string"

	// The validator reports non-structs with its own error type, which
	// Check passes through untouched rather than converting.
	err := validate.Check(&s)
	if err == nil {
		t.Fatal("expected error for non-struct value")
	}
	if validate.IsFieldErrors(err) {
		t.Fatalf("non-struct error should not be FieldErrors, got: %v", err)
	}
}
