package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/oneconcern/vaultmon/pkg/errors"
	"github.com/oneconcern/vaultmon/pkg/reconcile"
	"github.com/oneconcern/vaultmon/pkg/reconcile/status"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ensureCmd = &cobra.Command{
	Use:   "ensure [PATH]",
	Short: "Update the program, course and class of notes",
	Long: `Update the program, course and class declared by notes so they match the hierarchy resolved from their location.

PATH is a note or a directory, relative to the current directory or to the vault. It defaults to the whole vault.

Index notes are never modified. Other fields and the content of notes are kept as is.
A note which cannot be processed is reported and the others are processed anyway:
the command then exits with status 1.
`,
	Example: `% vaultmon metadata ensure --vault ~/notes --dry-run
MBA/Accounting/Class01/note.md: would update [program course class]
4 documents processed, would update 1, 3 markers skipped, 0 errors (class=1, course=1, program=1)

% vaultmon metadata ensure --vault ~/notes MBA/Accounting --program "Custom MBA"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newVaultSession()
		if err != nil {
			wrapFatalln("open vault", err)
			return
		}
		defer session.close()

		var target string
		if len(args) > 0 {
			target = args[0]
		}
		key, err := session.key(target)
		if err != nil {
			wrapFatalln("locate notes", err)
			return
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		out := cmd.OutOrStdout()
		walker := session.walker(reconcile.Reporter(func(r reconcile.FileResult) {
			if !vaultmonFlags.metadata.quiet && (r.Modified || r.Failed()) {
				fmt.Fprintln(out, r)
			}
		}))

		stats, err := walker.Walk(ctx, key, session.rctx, vaultmonFlags.metadata.dryRun)
		if err != nil && !errors.Is(err, status.ErrInterrupted) {
			wrapFatalln("ensure metadata", err)
			return
		}
		printSummary(out, stats)
		if err != nil {
			wrapFatalln("ensure metadata", err)
			return
		}
		if stats.Errors > 0 {
			session.logger.Error("some notes were not reconciled",
				zap.String("run", stats.RunID),
				zap.Error(stats.Err()),
			)
			osExit(1)
		}
	},
}

func printSummary(w io.Writer, stats reconcile.Stats) {
	c := color.New(color.FgGreen)
	switch {
	case stats.Errors > 0:
		c = color.New(color.FgRed)
	case stats.DryRun && stats.Modified > 0:
		c = color.New(color.FgYellow)
	}
	_, _ = c.Fprintln(w, stats.Summary())
}

func init() {
	addDryRunFlag(ensureCmd)
	addQuietFlag(ensureCmd)
	metadataCmd.AddCommand(ensureCmd)
}
