/*
Package cli provides command-line interface utilities for Callisto.

The cli package includes output formatters, a unified diff renderer,
progress reporting, and common CLI helpers used by the callisto command.

Output Formatting:

Command results can be rendered as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Diffs:

The fmt command's --diff flag renders the change a format run would make:

	fmt.Print(cli.Diff("main.go", before, after))

Progress Reporting:

For formatting many files:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(int64(len(files)))
	for i, f := range files {
		// format f
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown of watch mode on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
*/
package cli
