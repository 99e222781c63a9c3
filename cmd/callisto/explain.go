package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
)

var explainFlags struct {
	output string
}

var explainCmd = &cobra.Command{
	Use:   "explain <file>",
	Short: "Explain the layout decisions for a file",
	Long: `Explain the layout decisions for a file.

For every token boundary, explain lists the splits the formatter
considered, the formatting rules each split would activate, and the split
the search chose.

Examples:
  # Human-readable report
  callisto explain main.go

  # Machine-readable report
  callisto explain --output json main.go`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVarP(&explainFlags.output, "output", "o", "text", "output format (text, json)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	registry := newRegistry()
	eng, _, err := buildEngine(cfg, registry, logger)
	if err != nil {
		return err
	}

	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return cli.NewCommandError("explain", err)
	}

	exp, err := eng.Explain(cmd.Context(), path, src)
	if err != nil {
		return cli.NewCommandError("explain", err)
	}

	if explainFlags.output == "json" {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(cmd.OutOrStdout(), exp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s), layout cost %d\n", path, exp.Language, exp.Cost)
	for _, b := range exp.Boundaries {
		fmt.Fprintf(out, "%4d  %q -> %q\n", b.Index, b.Left, b.Right)
		for _, c := range b.Candidates {
			marker := "   "
			if c == b.Chosen || (b.Chosen != "" && len(c) >= len(b.Chosen) && c[:len(b.Chosen)] == b.Chosen) {
				marker = " * "
			}
			fmt.Fprintf(out, "     %s%s\n", marker, c)
		}
	}
	return nil
}
