package patterns

import (
	"sort"
	"strings"

	"github.com/odvcencio/mergecraft/pkg/types"
)

// whitespaceOnly fires when left and right carry the same content once
// whitespace is normalized away: the apparent conflict is purely
// indentation or line-ending noise.
var whitespaceOnly = Rule{
	Name:       "whitespace-only",
	Confidence: types.High,
	resolve: func(s types.MergeScenario[string]) (string, bool) {
		if normalizeWhitespace(s.Left) == normalizeWhitespace(s.Right) {
			return s.Left, true
		}
		return "", false
	},
}

// identicalChange fires when both sides landed on exactly the same text.
var identicalChange = Rule{
	Name:       "identical-change",
	Confidence: types.High,
	resolve: func(s types.MergeScenario[string]) (string, bool) {
		if s.Left == s.Right {
			return s.Left, true
		}
		return "", false
	},
}

// bothAddLines fires when base was empty and both sides independently
// inserted distinct, non-empty content at the same spot: there is nothing
// to disagree about, only an ordering choice, so both insertions are kept.
var bothAddLines = Rule{
	Name:       "both-add-lines",
	Confidence: types.Medium,
	resolve: func(s types.MergeScenario[string]) (string, bool) {
		if strings.TrimSpace(s.Base) != "" {
			return "", false
		}
		left := strings.TrimSpace(s.Left)
		right := strings.TrimSpace(s.Right)
		if left == "" || right == "" || left == right {
			return "", false
		}
		return joinWithNewline(s.Left, s.Right), true
	},
}

// oneEmpty fires when exactly one side left the region untouched in
// content (empty contribution) while the other added real content, so the
// non-empty side's text is the only meaningful change to keep.
var oneEmpty = Rule{
	Name:       "one-empty",
	Confidence: types.Medium,
	resolve: func(s types.MergeScenario[string]) (string, bool) {
		leftEmpty := strings.TrimSpace(s.Left) == ""
		rightEmpty := strings.TrimSpace(s.Right) == ""
		switch {
		case leftEmpty && !rightEmpty:
			return s.Right, true
		case rightEmpty && !leftEmpty:
			return s.Left, true
		default:
			return "", false
		}
	},
}

// prefixSuffix fires when one side's trimmed text is a prefix or suffix of
// the other's: one contributor simply extended what the other already wrote.
var prefixSuffix = Rule{
	Name:       "prefix-suffix",
	Confidence: types.Medium,
	resolve: func(s types.MergeScenario[string]) (string, bool) {
		left := strings.TrimSpace(s.Left)
		right := strings.TrimSpace(s.Right)
		if left == right {
			return "", false
		}
		if strings.HasPrefix(right, left) || strings.HasSuffix(right, left) {
			return s.Right, true
		}
		if strings.HasPrefix(left, right) || strings.HasSuffix(left, right) {
			return s.Left, true
		}
		return "", false
	},
}

// importUnion fires when every region looks like a block of import-style
// lines and merges them as a set: the union of both sides, minus anything
// both sides independently removed from base.
var importUnion = Rule{
	Name:       "import-union",
	Confidence: types.High,
	resolve: func(s types.MergeScenario[string]) (string, bool) {
		if !looksLikeImportBlock(s.Base) || !looksLikeImportBlock(s.Left) || !looksLikeImportBlock(s.Right) {
			return "", false
		}

		baseLines := nonEmptyLines(s.Base)
		leftLines := nonEmptyLines(s.Left)
		rightLines := nonEmptyLines(s.Right)

		baseSet := toSet(baseLines)
		leftSet := toSet(leftLines)
		rightSet := toSet(rightLines)

		merged := map[string]bool{}
		for l := range leftSet {
			merged[l] = true
		}
		for l := range rightSet {
			merged[l] = true
		}
		for l := range baseSet {
			if !leftSet[l] && !rightSet[l] {
				delete(merged, l)
			}
		}

		lines := make([]string, 0, len(merged))
		for l := range merged {
			lines = append(lines, l)
		}
		sort.Strings(lines)
		return joinLines(lines), true
	},
}

// adjacentEdit fires when base, left and right have the same line count
// and every disagreement between left and right touches a distinct line
// neither side otherwise shares: the region looks like one conflict only
// because diff3 coalesced two unrelated single-line edits that happen to
// sit next to each other.
var adjacentEdit = Rule{
	Name:       "adjacent-edit",
	Confidence: types.High,
	resolve: func(s types.MergeScenario[string]) (string, bool) {
		baseLines := splitLines(s.Base)
		leftLines := splitLines(s.Left)
		rightLines := splitLines(s.Right)

		if len(baseLines) != len(leftLines) || len(baseLines) != len(rightLines) {
			return "", false
		}

		out := make([]string, len(baseLines))
		changedAny := false
		for i := range baseLines {
			b, l, r := baseLines[i], leftLines[i], rightLines[i]
			switch {
			case l == r:
				out[i] = l
			case l == b && r != b:
				out[i] = r
				changedAny = true
			case r == b && l != b:
				out[i] = l
				changedAny = true
			default:
				return "", false
			}
		}
		if !changedAny {
			return "", false
		}
		return joinLines(out), true
	},
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func joinWithNewline(a, b string) string {
	a = strings.TrimRight(a, "\n")
	if a == "" {
		return b
	}
	if !strings.HasSuffix(a, "\n") {
		a += "\n"
	}
	return a + b
}

func looksLikeImportBlock(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true // an empty side doesn't disqualify an import-block region
	}
	for _, line := range nonEmptyLines(s) {
		if !hasImportPrefix(line) {
			return false
		}
	}
	return true
}

func hasImportPrefix(line string) bool {
	switch {
	case strings.HasPrefix(line, "import"),
		strings.HasPrefix(line, "use "),
		strings.HasPrefix(line, "from "),
		strings.HasPrefix(line, "\""),
		strings.HasPrefix(line, "#include"),
		strings.HasPrefix(line, "require("):
		return true
	}
	// const x = require(...) / const { a, b } = require(...)
	if strings.HasPrefix(line, "const ") && (strings.Contains(line, "require(") || strings.Contains(line, "import(")) {
		return true
	}
	return false
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range splitLines(s) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "(" || trimmed == ")" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func toSet(lines []string) map[string]bool {
	m := make(map[string]bool, len(lines))
	for _, l := range lines {
		m[l] = true
	}
	return m
}
