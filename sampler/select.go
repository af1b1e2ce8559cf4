package sampler

import "fmt"

// Pick returns count items drawn independently and uniformly from choices,
// with replacement: repeats are permitted and expected. Returns
// ErrEmptyChoices if choices is empty and count > 0.
func Pick[T any](s *Sampler, choices []T, count int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("pick count must be non-negative, have %d", count)
	}
	if len(choices) == 0 && count > 0 {
		return nil, ErrEmptyChoices
	}
	out := make([]T, count)
	for i := range out {
		out[i] = choices[s.src.Int32n(0, int32(len(choices)))]
	}
	return out, nil
}

// Shuffle returns a new slice holding the elements of values in a uniformly
// random order; values itself is never modified.
//
// The permutation is produced by a Fisher-Yates swap pass, walking i from
// n-1 down to 1 and swapping position i with a uniformly drawn position in
// [0, i], so all n! orderings are exactly equally likely.
func Shuffle[T any](s *Sampler, values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	for i := len(out) - 1; i >= 1; i-- {
		j := s.src.Int64n(0, int64(i)+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
