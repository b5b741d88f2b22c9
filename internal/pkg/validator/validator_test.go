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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g23e4567-e89b-12d3-a456-426614174000", // invalid hex
		"123e4567-e89b-12d3-a456-4266141740",   // too short
		"not-a-uuid",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-01-15T23:30:00+07:00", time.Date(2024, 1, 15, 23, 30, 0, 0, time.FixedZone("", 7*3600)), true},
		{"15-01-2024", time.Time{}, false},
		{"2024-13-40", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.input)
		if ok != c.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		input time.Time
		want  time.Time
	}{
		{time.Date(2024, 1, 15, 10, 30, 45, 999, time.UTC), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		// 23:30+07:00 is 16:30 UTC the same day
		{time.Date(2024, 1, 15, 23, 30, 0, 0, time.FixedZone("WIB", 7*3600)), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		// 01:00+07:00 is 18:00 UTC the previous day
		{time.Date(2024, 1, 15, 1, 0, 0, 0, time.FixedZone("WIB", 7*3600)), time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := NormalizeDate(c.input)
		if !got.Equal(c.want) {
			t.Errorf("NormalizeDate(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employeeId", Message: "employeeId is required"},
		{Field: "status", Message: "Status must be either Present or Absent"},
	}
	want := "employeeId is required, Status must be either Present or Absent"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}
