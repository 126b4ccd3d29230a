package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2025-03", "1999-12"}
	invalid := []string{"2025-13", "2025-3", "03-2025", "2025/03", "2025-03-01", ""}
	for _, s := range valid {
		if !IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "phone": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

type statusPayload struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Note   string `json:"note"`
	Day    string `json:"day" validate:"omitempty,datetime=2006-01-02"`
}

func TestStruct(t *testing.T) {
	if err := Struct(&statusPayload{Status: "APPROVED"}); err != nil {
		t.Errorf("Struct(valid) = %v, want nil", err)
	}

	err := Struct(&statusPayload{Status: "MAYBE"})
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Struct(invalid) error type = %T, want ValidationErrors", err)
	}
	got := errs.ToMap()
	if got["status"] != "status must be one of: APPROVED, REJECTED" {
		t.Errorf("Struct(invalid)[status] = %q", got["status"])
	}

	err = Struct(&statusPayload{Status: "APPROVED", Day: "2025/03/01"})
	if !errors.As(err, &errs) || errs.ToMap()["day"] != "day must be a date in 2006-01-02 format" {
		t.Errorf("Struct(bad date) = %v, want datetime error on day", err)
	}

	err = Struct(&statusPayload{})
	if !errors.As(err, &errs) || errs.ToMap()["status"] != "status is required" {
		t.Errorf("Struct(empty) = %v, want required error on status", err)
	}
}
