package vsa

import "strings"

// Count returns the number of candidates the space represents and true,
// or false if that count would exceed max — computed without enumerating
// the candidates themselves, so a combinatorial Join doesn't have to be
// materialized just to be rejected as too large.
func Count(v VersionSpace, max int) (int, bool) {
	n, ok := count(v, max)
	return n, ok
}

func count(v VersionSpace, max int) (int, bool) {
	switch n := v.(type) {
	case Atom:
		return 1, true
	case ListJoin:
		return 2, true
	case Union:
		total := 0
		for _, opt := range n.Options {
			c, ok := count(opt, max)
			if !ok {
				return 0, false
			}
			total += c
			if total > max {
				return 0, false
			}
		}
		return total, true
	case Join:
		total := 1
		for _, part := range n.Parts {
			c, ok := count(part, max)
			if !ok {
				return 0, false
			}
			total *= c
			if total > max {
				return 0, false
			}
		}
		return total, true
	default:
		return 0, true
	}
}

// Enumerate returns up to max candidate strings in deterministic order. If
// the space contains more than max candidates, the result is truncated and
// truncated is true.
func Enumerate(v VersionSpace, max int) (candidates []string, truncated bool) {
	var out []string
	full := enumerate(v, &out, max)
	return out, !full
}

// enumerate appends candidate strings from v into out, stopping once out
// reaches max entries. Returns false if it had to stop early.
func enumerate(v VersionSpace, out *[]string, max int) bool {
	if len(*out) >= max {
		return false
	}
	switch n := v.(type) {
	case Atom:
		*out = append(*out, n.Text)
		return true
	case ListJoin:
		leftText, ok := firstText(n.Left)
		if !ok {
			return true
		}
		rightText, ok := firstText(n.Right)
		if !ok {
			return true
		}
		*out = append(*out, joinCandidates(leftText, rightText))
		if len(*out) >= max {
			return false
		}
		*out = append(*out, joinCandidates(rightText, leftText))
		return len(*out) <= max
	case Union:
		for _, opt := range n.Options {
			if !enumerate(opt, out, max) {
				return false
			}
		}
		return true
	case Join:
		return enumerateJoin(n.Parts, "", out, max)
	default:
		return true
	}
}

// enumerateJoin walks Join parts left to right, building every combination
// of their candidate texts via simple recursive concatenation.
func enumerateJoin(parts []VersionSpace, prefix string, out *[]string, max int) bool {
	if len(parts) == 0 {
		if len(*out) >= max {
			return false
		}
		*out = append(*out, prefix)
		return true
	}
	var headCandidates []string
	if !enumerate(parts[0], &headCandidates, max) {
		// The head alone already exceeds max; take what we can.
	}
	for _, h := range headCandidates {
		if !enumerateJoin(parts[1:], prefix+h, out, max) {
			return false
		}
	}
	return true
}

func firstText(v VersionSpace) (string, bool) {
	var out []string
	enumerate(v, &out, 1)
	if len(out) == 0 {
		return "", false
	}
	return out[0], true
}

func joinCandidates(a, b string) string {
	if a == "" {
		return b
	}
	if !strings.HasSuffix(a, "\n") {
		a += "\n"
	}
	return a + b
}
