package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Text is the canonical plain-text report.
type Text struct{}

var rule = strings.Repeat("-", 41)

// Render implements Renderer.
func (Text) Render(w io.Writer, rep Report) error {
	bw := bufio.NewWriter(w)

	if rep.Result.Empty() {
		fmt.Fprintf(bw, "\n%s\n", NoCandidates)
	} else {
		fmt.Fprintf(bw, "\n%s\n\n", rule)
		fmt.Fprint(bw, "\nCandidate algorithms:\n\n")
		for i, alg := range rep.Result.Candidates {
			fmt.Fprintf(bw, "%d: %s\n\n", i+1, alg.Name)
			fmt.Fprintf(bw, "TIME COMPLEXITY: %s\n", alg.TimeComplexity)
			fmt.Fprintf(bw, "SPACE COMPLEXITY: %s\n\n", alg.SpaceComplexity)
			fmt.Fprintf(bw, "DESCRIPTION: %s\n\n\n", alg.Description)
		}
	}

	if len(rep.Eliminated) > 0 {
		fmt.Fprint(bw, "\nEliminated algorithms:\n\n")
		for _, v := range rep.Eliminated {
			fmt.Fprintf(bw, "- %s: %s\n", v.Algorithm.Name, joinReasons(v.Reasons))
		}
	}

	return bw.Flush()
}
