package entity

import "fmt"

// UpstreamRequestError reports a non-success response from a live backend.
type UpstreamRequestError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamRequestError) Error() string {
	return fmt.Sprintf("%s request failed with status %d: %s", e.Service, e.StatusCode, e.Body)
}

// UpstreamEmptyResult reports a well-formed but empty or absent payload from
// an upstream service.
type UpstreamEmptyResult struct {
	Service string
	ID      string
}

func (e *UpstreamEmptyResult) Error() string {
	return fmt.Sprintf("%s returned no result for %q", e.Service, e.ID)
}

// MalformedAnalysis reports model output that could not be recovered as a
// structured analysis, even after fallback extraction.
type MalformedAnalysis struct {
	Output string
	Err    error
}

func (e *MalformedAnalysis) Error() string {
	return fmt.Sprintf("analysis output is not valid JSON: %v", e.Err)
}

func (e *MalformedAnalysis) Unwrap() error {
	return e.Err
}
