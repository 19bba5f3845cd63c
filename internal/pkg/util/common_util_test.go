package util

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestSplitTechstack(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"React, Node ,, Go "`, "React|Node|Go"},
		{`["Go", " ", "Redis"]`, "Go|Redis"},
		{`42`, ""},
	}
	for _, tt := range tests {
		got := SplitTechstack(json.RawMessage(tt.raw))
		if strings.Join(got, "|") != tt.want {
			t.Errorf("SplitTechstack(%s) = %v, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestParseFlexibleInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{`5`, 5, true},
		{`"7"`, 7, true},
		{`"3 questions"`, 3, true},
		{`"abc"`, 0, false},
		{`null`, 0, false},
		{`true`, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFlexibleInt(json.RawMessage(tt.raw))
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFlexibleInt(%s) = %d, %v", tt.raw, got, ok)
		}
	}
}

func TestValidateDTO(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	if err := ValidateDTO(&payload{}); err == nil || !strings.Contains(err.Error(), "Name") {
		t.Fatalf("expected Name failure, got %v", err)
	}
	if err := ValidateDTO(&payload{Name: "x"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
