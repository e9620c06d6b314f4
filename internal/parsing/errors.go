package parsing

import (
	"fmt"
	"strings"
)

// InputError reports a required raw input that is missing or blank.
// It is the only error that stops an analysis before the pipeline runs.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s text is empty", e.Field)
}

// ValidateInputs checks that both raw texts carry content.
func ValidateInputs(resumeText, jobText string) error {
	if strings.TrimSpace(resumeText) == "" {
		return &InputError{Field: "resume"}
	}
	if strings.TrimSpace(jobText) == "" {
		return &InputError{Field: "job description"}
	}
	return nil
}
