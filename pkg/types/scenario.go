package types

// MergeScenario is the common shape threaded through every stage of the
// pipeline: a common ancestor plus two edits, generic over text or CstNode.
type MergeScenario[T any] struct {
	Base  T
	Left  T
	Right T
}

// MergeResultKind tags which variant a MergeResult carries.
type MergeResultKind int

const (
	MergeResolved MergeResultKind = iota
	MergeConflict
)

// MergeResult is the text-level outcome of a merge: either a resolved
// string, or a conflict carrying the three unresolved regions.
type MergeResult struct {
	Kind   MergeResultKind
	Text   string // valid when Kind == MergeResolved
	Base   string // valid when Kind == MergeConflict
	Left   string // valid when Kind == MergeConflict
	Right  string // valid when Kind == MergeConflict
}

// Resolved builds a resolved MergeResult.
func Resolved(text string) MergeResult {
	return MergeResult{Kind: MergeResolved, Text: text}
}

// ConflictResult builds a conflicting MergeResult over the three regions.
func ConflictResult(scenario MergeScenario[string]) MergeResult {
	return MergeResult{
		Kind:  MergeConflict,
		Base:  scenario.Base,
		Left:  scenario.Left,
		Right: scenario.Right,
	}
}

func (m MergeResult) IsConflict() bool {
	return m.Kind == MergeConflict
}

// Scenario reconstructs the MergeScenario carried by a conflicting result.
func (m MergeResult) Scenario() MergeScenario[string] {
	return MergeScenario[string]{Base: m.Base, Left: m.Left, Right: m.Right}
}
