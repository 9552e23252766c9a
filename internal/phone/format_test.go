package phone

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{"empty", "", "US", ""},
		{"blank", "   ", "US", ""},
		{"domestic number in national format", "2015550123", "US", "(201) 555-0123"},
		{"domestic number with punctuation", " 201.555.0123 ", "US", "(201) 555-0123"},
		{"foreign number in international format", "+1 201 555 0123", "GB", "+1 201-555-0123"},
		{"unparseable input kept", "call me", "US", "call me"},
		{"invalid number kept trimmed", " 123 ", "US", "123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input, tt.region); got != tt.want {
				t.Errorf("Format(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.want)
			}
		})
	}
}
