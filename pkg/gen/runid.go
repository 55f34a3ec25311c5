package gen

import "github.com/google/uuid"

// RunIDGenerator produces correlation ids for pipeline runs.
type RunIDGenerator func() string

func RunID() RunIDGenerator {
	return func() string {
		return uuid.NewString()
	}
}

func (g RunIDGenerator) Next() string {
	if g == nil {
		return uuid.Nil.String()
	}

	return g()
}
