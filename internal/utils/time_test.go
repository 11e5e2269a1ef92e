package utils

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-01-15", false},
		{"2024-12-31", false},
		{"2024-13-01", true},
		{"15-01-2024", true},
		{"2024/01/15", true},
		{"", true},
	}
	for _, tc := range tests {
		_, err := ParseDate(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) err = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:30", false},
		{"23:59", false},
		{"24:00", true},
		{"9:30am", true},
		{"", true},
	}
	for _, tc := range tests {
		_, err := ParseTime(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTime(%q) err = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
	}
}

func TestResolveDate(t *testing.T) {
	got, err := ResolveDate("2024-01-15")
	if err != nil || got != "2024-01-15" {
		t.Errorf("ResolveDate valid = %q, %v", got, err)
	}

	if _, err := ResolveDate("not-a-date"); err == nil {
		t.Errorf("expected error for malformed date")
	}

	got, err = ResolveDate("")
	if err != nil {
		t.Fatalf("ResolveDate empty: %v", err)
	}
	if got != Today() {
		t.Errorf("expected today for empty input, got %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{90, "1h 30m"},
		{150, "2h 30m"},
	}
	for _, tc := range tests {
		if got := FormatMinutes(tc.minutes); got != tc.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
