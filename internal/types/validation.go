package types

// ValidationIssue is a single finding from a validation pass
type ValidationIssue struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult aggregates the findings of a validation pass. Findings are
// returned as data rather than raised, so callers can proceed best-effort on
// warnings.
type ValidationResult struct {
	IsValid  bool              `json:"is_valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
	Score    int               `json:"score"`
}

// AddError appends an error finding
func (r *ValidationResult) AddError(code, field, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Code: code, Field: field, Message: message})
}

// AddWarning appends a warning finding
func (r *ValidationResult) AddWarning(code, field, message string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Code: code, Field: field, Message: message})
}

// Finalize computes the score and validity from the accumulated findings.
// Each error costs 10 points and each warning 2, floored at zero.
func (r *ValidationResult) Finalize() {
	score := 100 - 10*len(r.Errors) - 2*len(r.Warnings)
	if score < 0 {
		score = 0
	}
	r.Score = score
	r.IsValid = len(r.Errors) == 0
}

// ErrorMessages returns every error message, in order
func (r *ValidationResult) ErrorMessages() []string {
	messages := make([]string, 0, len(r.Errors))
	for _, issue := range r.Errors {
		messages = append(messages, issue.Message)
	}
	return messages
}
