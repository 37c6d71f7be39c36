package errors

import (
	"strings"
	"testing"
)

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name value", "age:>30", false},
		{"valid sentinel", "_", false},
		{"valid unicode", "größe:<=1,75", false},
		{"valid spaces", "petal width : <= 1.75", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 513), true},
		{"null byte", "age\x00:>30", true},
		{"newline", "age:\n>30", true},
		{"tab", "age:\t>30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToken(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateToken(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "chart.svg", false},
		{"valid nested", "out/charts/chart.svg", false},
		{"valid absolute", "/tmp/chart.svg", false},
		{"valid resolved dots", "out/../chart.svg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"traversal", "../chart.svg", true},
		{"deep traversal", "out/../../chart.svg", true},
		{"null byte", "chart\x00.svg", true},
		{"control char", "chart\x01.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"svg", "json", "png", "pdf"}

	for _, f := range supported {
		if err := ValidateFormat(f, supported...); err != nil {
			t.Errorf("ValidateFormat(%q) error = %v", f, err)
		}
	}

	err := ValidateFormat("gif", supported...)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("ValidateFormat(gif) = %v, want %v", err, ErrCodeInvalidFormat)
	}
	if !strings.Contains(UserMessage(err), "svg, json, png, pdf") {
		t.Errorf("message %q should list supported formats", UserMessage(err))
	}
}
