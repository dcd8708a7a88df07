// Package ats scores resumes against heuristics simulating how applicant
// tracking systems parse them, and produces prioritized optimization
// feedback.
package ats

import "fmt"

// ServiceUnavailableError indicates the batch optimization call failed as a
// whole. Individual analysis branches degrade on their own; this error only
// surfaces for unexpected top-level failures or unusable requests.
type ServiceUnavailableError struct {
	Cause error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ats optimization service unavailable: %v", e.Cause)
	}
	return "ats optimization service unavailable"
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Cause
}
