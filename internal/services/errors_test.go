package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/mentorhub/mentorhub/internal/models"
)

func TestValidationError(t *testing.T) {
	err := validateRequest(&CreateProjectLinkRequest{Category: "nope"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("validateRequest() error = %v, expected *ValidationError", err)
	}
	if got := verr.Fields(); !equalStrings(got, []string{"Category", "URL"}) {
		t.Errorf("Fields() = %v, expected [Category URL]", got)
	}
	if !strings.HasPrefix(err.Error(), "validation failed: ") {
		t.Errorf("Error() = %q", err.Error())
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Error("ValidationError should unwrap to validator.ValidationErrors")
	}

	if err := validateRequest(&CreateProjectRequest{Name: "ok"}); err != nil {
		t.Errorf("validateRequest(valid) error = %v", err)
	}
}

func TestRequireMembers(t *testing.T) {
	tests := []struct {
		name    string
		members []*models.Member
		wantErr bool
	}{
		{"saved", []*models.Member{{ID: 1}, {ID: 2}}, false},
		{"nil", []*models.Member{{ID: 1}, nil}, true},
		{"unsaved", []*models.Member{{Email: "a@x.com"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireMembers(tt.members...)
			if (err != nil) != tt.wantErr {
				t.Errorf("requireMembers() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMemberRequired) {
				t.Errorf("requireMembers() error = %v, expected ErrMemberRequired", err)
			}
		})
	}
}
