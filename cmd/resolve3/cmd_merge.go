package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/odvcencio/mergecraft/pkg/resolver"
	"github.com/odvcencio/mergecraft/pkg/types"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	var (
		configPath string
		langName   string
		threshold  string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:          "merge <base> <left> <right>",
		Short:        "Resolve a three-way merge between base, left and right revisions",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolver.DefaultConfig()
			if configPath != "" {
				loaded, err := resolver.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			if langName != "" {
				cfg.Language = types.LanguageFromName(langName)
			} else if cfg.Language == types.LangUnknown {
				cfg.Language = types.LanguageFromExtension(filepath.Ext(args[0]))
			}
			if threshold != "" {
				c, err := parseThreshold(threshold)
				if err != nil {
					return err
				}
				cfg.AutoAcceptThreshold = c
			}

			base, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			left, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			right, err := os.ReadFile(args[2])
			if err != nil {
				return err
			}

			r := resolver.New(cfg)
			result := r.ResolveFile(string(base), string(left), string(right))

			out := cmd.OutOrStdout()
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(result.MergedContent), 0o644); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, result.MergedContent)
			}

			if !result.AllResolved {
				reportConflicts(cmd.ErrOrStderr(), result)
				return errUnresolved
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a .resolve3.toml config file")
	cmd.Flags().StringVar(&langName, "language", "", "language grammar to use for the structural-merge tier (e.g. go, rust, python)")
	cmd.Flags().StringVar(&threshold, "threshold", "", "auto-accept confidence threshold: low, medium, high")
	cmd.Flags().StringVar(&outPath, "out", "", "write merged/conflict text to this path instead of stdout")

	return cmd
}

// errUnresolved is returned (never wrapped with a message) so the root
// command exits non-zero without cobra printing a redundant error line;
// the conflict report already went to stderr.
var errUnresolved = silentError{}

type silentError struct{}

func (silentError) Error() string { return "" }

func parseThreshold(name string) (types.Confidence, error) {
	switch strings.ToLower(name) {
	case "low":
		return types.Low, nil
	case "medium":
		return types.Medium, nil
	case "high":
		return types.High, nil
	default:
		return types.Low, fmt.Errorf("resolve3: unknown threshold %q", name)
	}
}

func reportConflicts(w io.Writer, result resolver.FileResolverOutput) {
	unresolved := 0
	for _, c := range result.Conflicts {
		if !c.Resolved {
			unresolved++
		}
	}
	fmt.Fprintf(w, "resolve3: %d conflict", unresolved)
	if unresolved != 1 {
		fmt.Fprint(w, "s")
	}
	fmt.Fprintln(w, " remain unresolved")
	for i, c := range result.Conflicts {
		if c.Resolved {
			continue
		}
		fmt.Fprintf(w, "  conflict %d: best candidate confidence=%s strategy=%s (below threshold)\n", i+1, bestOf(c).Confidence, bestOf(c).Strategy)
	}
}

func bestOf(c resolver.ResolverOutput) types.ResolutionCandidate {
	if len(c.Candidates) == 0 {
		return types.ResolutionCandidate{Confidence: types.Low}
	}
	best := c.Candidates[0]
	for _, cand := range c.Candidates[1:] {
		if cand.Confidence > best.Confidence {
			best = cand
		}
	}
	return best
}
