package validation

import (
	"strings"

	"github.com/avoronin/bmrcalc/internal/model"
)

// FormatErrors renders a validation result for display: errors first under
// one heading, warnings under another. Returns "" when there is nothing to
// report. Pure text formatting, no validation logic.
func FormatErrors(res model.ValidationResult) string {
	if len(res.Errors) == 0 {
		return ""
	}

	var errMsgs, warnMsgs []string
	for _, e := range res.Errors {
		if e.Severity == model.SeverityError {
			errMsgs = append(errMsgs, e.Message)
		} else {
			warnMsgs = append(warnMsgs, e.Message)
		}
	}

	var b strings.Builder
	if len(errMsgs) > 0 {
		b.WriteString("Errors:\n")
		b.WriteString(strings.Join(errMsgs, "\n"))
	}
	if len(warnMsgs) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Warnings:\n")
		b.WriteString(strings.Join(warnMsgs, "\n"))
	}
	return b.String()
}
