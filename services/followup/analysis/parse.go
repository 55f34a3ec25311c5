package analysis

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/meetflow/followup/services/followup/entity"
)

// ParseAnalysis decodes model output into an analysis. It tries a strict
// parse of the whole output first, then falls back to the first balanced
// JSON object embedded in the text (models often wrap the payload in prose
// or code fences). Both stages are deterministic.
func ParseAnalysis(output string) (*entity.Analysis, error) {
	var a entity.Analysis
	if err := json.Unmarshal([]byte(output), &a); err == nil {
		return &a, nil
	}

	span, ok := firstObjectSpan(output)
	if !ok {
		return nil, &entity.MalformedAnalysis{Output: output, Err: errors.New("no JSON object found in output")}
	}
	if err := json.Unmarshal([]byte(span), &a); err != nil {
		return nil, &entity.MalformedAnalysis{Output: output, Err: err}
	}
	return &a, nil
}

// firstObjectSpan returns the first balanced {...} substring. String literals
// and escape sequences are tracked so braces inside strings do not count.
func firstObjectSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
