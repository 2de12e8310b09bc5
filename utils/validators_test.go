package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"abc1!x", true},
		{"longenough9#", true},
		{"short", false},
		{"noNumbers!", false},
		{"nospecial99", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := ValidatePassword(tc.password); got != tc.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestValidateDateString(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-06-01", true},
		{"1999-12-31", true},
		{"2024-6-1", false},
		{"06/01/2024", false},
		{"2024-06-01T00:00:00Z", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := ValidateDateString(tc.date); got != tc.want {
			t.Errorf("ValidateDateString(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestValidateTimeString(t *testing.T) {
	tests := []struct {
		time string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"7:30", false},
		{"07:30:00", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := ValidateTimeString(tc.time); got != tc.want {
			t.Errorf("ValidateTimeString(%q) = %v, want %v", tc.time, got, tc.want)
		}
	}
}
