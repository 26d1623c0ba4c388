package task

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Pay bill"); err != nil {
		t.Errorf("ValidateTitle(%q) = %v, want nil", "Pay bill", err)
	}
	for _, title := range []string{"", "   ", "\t\n"} {
		if err := ValidateTitle(title); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("ValidateTitle(%q) = %v, want ErrEmptyTitle", title, err)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"lowercases and trims", []string{" Work ", "URGENT"}, []string{"work", "urgent"}},
		{"drops empties", []string{"", "  ", "home"}, []string{"home"}},
		{"dedupes keeping first order", []string{"b", "a", "B", "a"}, []string{"b", "a"}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTags(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeProject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  work  ", "work"},
		{"work", "work"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeProject(tt.in); got != tt.want {
			t.Errorf("NormalizeProject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
