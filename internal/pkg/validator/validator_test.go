package validator

import (
	"testing"
	"time"
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

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"E001", "emp.kim", "2024-0001", "a"}
	invalid := []string{"", "has space", "김철수", "x/y"}
	for _, id := range valid {
		if !IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", id)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2026-10-16 09:30", time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)},
		{"2026-10-16", time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)},
		{"2026-10-16 18:00:45", time.Date(2026, 10, 16, 18, 0, 45, 0, time.UTC)},
		{" 2026-10-16 ", time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, ok := ParseDateTime(c.input, time.UTC)
		if !ok || !got.Equal(c.want) {
			t.Errorf("ParseDateTime(%q) = %v, %v; want %v", c.input, got, ok, c.want)
		}
	}

	for _, s := range []string{"", "2026/10/16", "16-10-2026", "2026-10-16T09:30:00Z"} {
		if _, ok := ParseDateTime(s, time.UTC); ok {
			t.Errorf("ParseDateTime(%q) succeeded, want failure", s)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	if !IsValidYearMonth(2026, 2) {
		t.Errorf("IsValidYearMonth(2026, 2) = false, want true")
	}
	if IsValidYearMonth(2026, 13) || IsValidYearMonth(2026, 0) || IsValidYearMonth(1, 5) {
		t.Errorf("IsValidYearMonth accepted an invalid month")
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
		{Field: "employee_id", Message: "invalid"},
		{Field: "password", Message: "required"},
	}
	got := errs.Error()
	want := "employee_id: invalid; password: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "invalid"},
		{Field: "password", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"employee_id": "invalid", "password": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
