package chat

import "strings"

// Normalize turns a GenerationResult into answer text or one of
// ErrNoCandidates and *EmptyGenerationError. A direct Text field takes
// precedence over candidates; otherwise only the first candidate is read and
// its fragments are joined in order.
func Normalize(res *GenerationResult) (string, error) {
	if res != nil && res.Text != nil {
		if *res.Text == "" {
			return "", &EmptyGenerationError{}
		}
		return *res.Text, nil
	}

	if res == nil || len(res.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	first := res.Candidates[0]

	var b strings.Builder
	if first.Content != nil {
		for _, part := range first.Content.Parts {
			if part == nil || part.Text == nil {
				continue
			}
			b.WriteString(*part.Text)
		}
	}

	if b.Len() == 0 {
		return "", &EmptyGenerationError{FinishReason: first.FinishReason}
	}
	return b.String(), nil
}
