package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/lang"
	"mercator-hq/callisto/pkg/vcs"
)

var fmtFlags struct {
	write   bool
	diff    bool
	list    bool
	changed bool
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [path...]",
	Short: "Format source files",
	Long: `Format source files.

Without flags the formatted output is printed to stdout. Directories are
walked recursively; only files with a registered language frontend are
formatted.

Examples:
  # Print a formatted file
  callisto fmt main.go

  # Rewrite a tree in place
  callisto fmt --write .

  # Show pending changes as a diff
  callisto fmt --diff main.go

  # List files that are not formatted (exit 1 if any)
  callisto fmt --list .

  # Only files with uncommitted git changes
  callisto fmt --write --changed`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false, "rewrite files in place")
	fmtCmd.Flags().BoolVarP(&fmtFlags.diff, "diff", "d", false, "print a diff instead of the result")
	fmtCmd.Flags().BoolVarP(&fmtFlags.list, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVar(&fmtFlags.changed, "changed", false, "restrict to files with uncommitted git changes")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	registry := newRegistry()
	eng, store, err := buildEngine(cfg, registry, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	files, err := collectFiles(args, registry)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Info("no files to format")
		return nil
	}

	var progress cli.ProgressReporter
	if fmtFlags.write && len(files) > 1 {
		progress = cli.NewProgressReporter(os.Stderr)
		progress.Start(int64(len(files)))
	}

	ctx := cmd.Context()
	var unformatted []string
	for i, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return cli.NewCommandError("fmt", err)
		}

		res, err := eng.Format(ctx, path, src)
		if err != nil {
			if progress != nil {
				progress.Error(err)
			}
			return cli.NewCommandError("fmt", err)
		}

		switch {
		case fmtFlags.list:
			if res.Changed {
				fmt.Fprintln(cmd.OutOrStdout(), path)
				unformatted = append(unformatted, path)
			}
		case fmtFlags.diff:
			if res.Changed {
				fmt.Fprint(cmd.OutOrStdout(), cli.Diff(path, string(src), res.Output))
			}
		case fmtFlags.write:
			if res.Changed {
				if err := writeFile(path, res.Output); err != nil {
					return cli.NewCommandError("fmt", err)
				}
			}
		default:
			fmt.Fprint(cmd.OutOrStdout(), res.Output)
		}

		if progress != nil {
			progress.Update(int64(i + 1))
		}
	}

	if progress != nil {
		progress.Finish()
	}

	if fmtFlags.list && len(unformatted) > 0 {
		return fmt.Errorf("%d file(s) are not formatted", len(unformatted))
	}
	return nil
}

// collectFiles expands the argument paths into the formattable files.
// --changed swaps the argument walk for the git worktree status.
func collectFiles(args []string, registry *lang.Registry) ([]string, error) {
	if fmtFlags.changed {
		changed, err := vcs.ChangedFiles(".")
		if err != nil {
			return nil, err
		}
		var files []string
		for _, path := range changed {
			if supported(registry, path) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			base := filepath.Base(path)
			if info.IsDir() {
				if strings.HasPrefix(base, ".") && path != arg {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(base, ".") {
				return nil
			}
			if supported(registry, path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// supported reports whether a frontend is registered for the path.
func supported(registry *lang.Registry, path string) bool {
	_, err := registry.ForFile(path)
	return err == nil
}

// writeFile replaces a file's contents, preserving its permissions.
func writeFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}
