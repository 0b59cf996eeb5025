package validation

import (
	"strings"
	"testing"
)

type TestStruct struct {
	Name    string   `json:"name" validate:"notblank"`
	Kind    string   `json:"kind" validate:"required,oneof=alpha beta"`
	Email   *string  `json:"email" validate:"omitempty,email"`
	Links   []string `json:"links" validate:"omitempty,dive,url"`
	Score   *int     `json:"score" validate:"omitempty,gte=0,lte=5"`
	Comment string   `validate:"max=5"`
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestStruct_ValidInput(t *testing.T) {
	s := TestStruct{
		Name:  "Хаан Ресторан",
		Kind:  "alpha",
		Email: strPtr("khan@restaurant.mn"),
		Links: []string{"https://example.com/a.jpg"},
		Score: intPtr(4),
	}

	errors := Struct(s)
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %v", errors)
	}
}

func TestStruct_RequiredFields(t *testing.T) {
	errors := Struct(TestStruct{Name: "   "})
	if len(errors) == 0 {
		t.Fatal("Expected validation errors for required fields")
	}

	hasNameError := false
	hasKindError := false
	for _, err := range errors {
		if err.Field == "name" && strings.Contains(err.Message, "required") && err.IsMissing() {
			hasNameError = true
		}
		if err.Field == "kind" && err.IsMissing() {
			hasKindError = true
		}
	}

	if !hasNameError {
		t.Errorf("Expected blank name to be reported as required, got %v", errors)
	}
	if !hasKindError {
		t.Errorf("Expected kind required error, got %v", errors)
	}
}

func TestStruct_OneOf(t *testing.T) {
	errors := Struct(TestStruct{Name: "x", Kind: "gamma"})
	if len(errors) != 1 {
		t.Fatalf("Expected one error, got %v", errors)
	}
	if errors[0].Field != "kind" || !strings.Contains(errors[0].Message, "alpha, beta") {
		t.Errorf("Unexpected error %+v", errors[0])
	}
	if errors[0].IsMissing() {
		t.Error("oneof failure should not be reported as missing")
	}
}

func TestStruct_OptionalFormats(t *testing.T) {
	testCases := []struct {
		name  string
		input TestStruct
		field string
	}{
		{"bad email", TestStruct{Email: strPtr("not-an-email")}, "email"},
		{"bad link", TestStruct{Links: []string{"https://ok.mn", "nope"}}, "links[1]"},
		{"negative score", TestStruct{Score: intPtr(-1)}, "score"},
		{"score too high", TestStruct{Score: intPtr(6)}, "score"},
		{"struct field name fallback", TestStruct{Comment: "too long"}, "comment"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.input.Name = "x"
			tc.input.Kind = "beta"

			errors := Struct(tc.input)
			found := false
			for _, err := range errors {
				if err.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected error on %s, got %v", tc.field, errors)
			}
		})
	}
}

func TestVar(t *testing.T) {
	if errors := Var("website", "https://nominhotel.mn", "url"); len(errors) != 0 {
		t.Errorf("Expected valid URL, got %v", errors)
	}

	errors := Var("website", "nominhotel", "url")
	if len(errors) != 1 || errors[0].Field != "website" {
		t.Fatalf("Expected website error, got %v", errors)
	}

	errors = Var("images", []string{"https://a.mn/1.jpg", "bad"}, "dive,url")
	if len(errors) != 1 || errors[0].Field != "images[1]" {
		t.Errorf("Expected images[1] error, got %v", errors)
	}
}
