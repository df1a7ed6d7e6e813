package tree

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain_file", "main.py", false},
		{"dotfile", ".gitignore", false},
		{"dunder", "__init__.py", false},
		{"cjk", "房源.md", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"dot_dot", "..", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"absolute", "/etc", true},
		{"nul", "a\x00b", true},
		{"decomposed_unicode", "cafe\u0301", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("error %v does not wrap ErrInvalidName", err)
			}
		})
	}
}
