package sheetbind

import (
	"testing"
	"time"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   int64
	}{
		{name: "positive integer", input: "123", wantOK: true, want: 123},
		{name: "zero", input: "0", wantOK: true, want: 0},
		{name: "negative integer", input: "-456", wantOK: true, want: -456},
		{name: "surrounding whitespace", input: "  42 ", wantOK: true, want: 42},
		{name: "thousands separator", input: "1,234", wantOK: true, want: 1234},
		{name: "currency symbol", input: "$1,234", wantOK: true, want: 1234},
		{name: "accounting negative", input: "(25)", wantOK: true, want: -25},
		{name: "integer-valued decimal", input: "30.0", wantOK: true, want: 30},
		{name: "scientific notation", input: "3e2", wantOK: true, want: 300},
		{name: "fractional value", input: "30.5", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "abc", wantOK: false},
		{name: "trailing text", input: "12 years", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseInt(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseInt(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   float64
	}{
		{name: "decimal", input: "123.45", wantOK: true, want: 123.45},
		{name: "leading decimal point", input: ".99", wantOK: true, want: 0.99},
		{name: "euro with separators", input: "€1,234.56", wantOK: true, want: 1234.56},
		{name: "pound", input: "£10.50", wantOK: true, want: 10.5},
		{name: "accounting negative", input: "(1.5)", wantOK: true, want: -1.5},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "n/a", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseFloat(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseFloat(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseFloat(%q) = %g, want %g", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   string
	}{
		{name: "money", input: "$1,234.56", wantOK: true, want: "1234.56"},
		{name: "plain", input: "99.90", wantOK: true, want: "99.9"},
		{name: "accounting negative", input: "(123.45)", wantOK: true, want: "-123.45"},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "free", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDecimal(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseDecimal(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("parseDecimal(%q) = %s, want %s", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   time.Time
	}{
		{name: "ISO", input: "2024-01-15", wantOK: true, want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "US slashes", input: "1/15/2024", wantOK: true, want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "day month year", input: "15 Jan 2024", wantOK: true, want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "compact", input: "20240115", wantOK: true, want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "datetime", input: "2024-01-15 08:30:00", wantOK: true, want: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{name: "two-digit year past", input: "1/15/99", wantOK: true, want: time.Date(1999, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "someday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
