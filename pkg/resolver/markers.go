package resolver

import (
	"strings"

	"github.com/odvcencio/mergecraft/pkg/types"
)

// FormatConflict renders a scenario as git-style conflict markers. This is
// the only place in the pipeline that produces marker text; every earlier
// stage works with raw region content.
func FormatConflict(s types.MergeScenario[string]) string {
	var b strings.Builder
	b.WriteString("<<<<<<< LEFT\n")
	writeRegion(&b, s.Left)
	b.WriteString("||||||| BASE\n")
	writeRegion(&b, s.Base)
	b.WriteString("=======\n")
	writeRegion(&b, s.Right)
	b.WriteString(">>>>>>> RIGHT\n")
	return b.String()
}

func writeRegion(b *strings.Builder, region string) {
	if region == "" {
		return
	}
	b.WriteString(region)
	if !strings.HasSuffix(region, "\n") {
		b.WriteString("\n")
	}
}
