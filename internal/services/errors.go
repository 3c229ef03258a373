package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mentorhub/mentorhub/internal/models"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberRequired     = errors.New("member is required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrInterestNotFound   = errors.New("interest not found")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrProjectNotFound    = errors.New("project not found")
	ErrMentorshipExists   = errors.New("mentorship already exists")
	ErrMentorshipNotFound = errors.New("mentorship not found")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError is returned when request input fails validation.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields(), ", ")
}

func (e *ValidationError) Unwrap() error { return e.err }

// Fields returns the struct fields that failed, in declaration order.
func (e *ValidationError) Fields() []string {
	var verrs validator.ValidationErrors
	if !errors.As(e.err, &verrs) {
		return []string{e.err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return &ValidationError{err: err}
	}
	return nil
}

func requireMembers(members ...*models.Member) error {
	for _, m := range members {
		if m == nil || m.ID == 0 {
			return ErrMemberRequired
		}
	}
	return nil
}
