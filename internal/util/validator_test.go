package util

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		t.Fatal(err)
	}
	if err := v.RegisterValidation("cmin", CustomMin); err != nil {
		t.Fatal(err)
	}
	if err := v.RegisterValidation("cmax", CustomMax); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newTestValidator(t)

	type form struct {
		Name  string `validate:"strNotEmpty"`
		Short string `validate:"cmin=3"`
		Long  string `validate:"cmax=5"`
	}

	tests := []struct {
		name    string
		input   form
		wantErr bool
	}{
		{"All valid", form{Name: "a", Short: "abc", Long: "abcde"}, false},
		{"Whitespace only name", form{Name: "   ", Short: "abc", Long: "ab"}, true},
		{"Too short after trim", form{Name: "a", Short: " ab ", Long: "ab"}, true},
		{"Too long", form{Name: "a", Short: "abc", Long: "abcdef"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateErrorMessages(t *testing.T) {
	v := newTestValidator(t)

	type form struct {
		Email string `validate:"required"`
	}

	err := v.Struct(form{})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErrors := GenerateErrorMessages(err)
	if len(apiErrors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(apiErrors))
	}
	if apiErrors[0].Field != "Email" {
		t.Errorf("Expected field Email, got %s", apiErrors[0].Field)
	}
	if apiErrors[0].Message != "Email is required" {
		t.Errorf("Unexpected message: %s", apiErrors[0].Message)
	}
}

func TestGenerateErrorMessagesRecordNotFound(t *testing.T) {
	apiErrors := GenerateErrorMessages(gorm.ErrRecordNotFound)
	if len(apiErrors) != 1 || apiErrors[0].Message != "Record not found" {
		t.Errorf("Unexpected errors: %+v", apiErrors)
	}
}

func TestGenerateErrorMessagesPlainError(t *testing.T) {
	apiErrors := GenerateErrorMessages(errors.New("invalid uuid"), "designId")
	if len(apiErrors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(apiErrors))
	}
	if apiErrors[0].Field != "designId" {
		t.Errorf("Expected field designId, got %s", apiErrors[0].Field)
	}
	if apiErrors[0].Message != "invalid uuid" {
		t.Errorf("Unexpected message: %s", apiErrors[0].Message)
	}
}
