package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/oneconcern/vaultmon/pkg/hierarchy"
	"github.com/spf13/cobra"
)

type resolution struct {
	Path    string             `json:"path" yaml:"path"`
	Info    hierarchy.Info     `json:"hierarchy" yaml:"hierarchy"`
	Markers []hierarchy.Marker `json:"markers,omitempty" yaml:"markers,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve NOTE",
	Short: "Print the hierarchy resolved for a note",
	Long:  `Print the program, course and class resolved for a note, with the source of each value.`,
	Example: `% vaultmon metadata resolve --vault ~/notes MBA/Accounting/Class01/note.md --markers
program: MBA (marker: MBA/program-index.md)
course:  Accounting (marker: MBA/Accounting/course-index.md)
class:   Class01 (marker: MBA/Accounting/Class01/class-index.md)
markers:
  0  class    Class01     MBA/Accounting/Class01/class-index.md
  1  course   Accounting  MBA/Accounting/course-index.md
  2  program  MBA         MBA/program-index.md`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newVaultSession()
		if err != nil {
			wrapFatalln("open vault", err)
			return
		}
		defer session.close()

		key, err := session.key(args[0])
		if err != nil {
			wrapFatalln("locate note", err)
			return
		}
		ctx := context.Background()
		res := resolution{Path: key}
		res.Info, err = session.walker().Resolve(ctx, key, session.rctx)
		if err != nil {
			wrapFatalln("resolve hierarchy", err)
			return
		}
		if vaultmonFlags.metadata.markers {
			res.Markers, err = session.engine.Resolver().Markers(ctx, key, session.rctx)
			if err != nil {
				wrapFatalln("list index notes", err)
				return
			}
		}
		if err = render(cmd.OutOrStdout(), vaultmonFlags.format.resolve, res, res.text); err != nil {
			wrapFatalln("print hierarchy", err)
			return
		}
	},
}

func (r resolution) text(w io.Writer) error {
	for _, l := range hierarchy.Fields {
		fmt.Fprintf(w, "%-8s %s\n", string(l)+":", r.Info.Get(l))
	}
	if len(r.Markers) == 0 {
		return nil
	}
	fmt.Fprintln(w, "markers:")
	for _, m := range r.Markers {
		fmt.Fprintf(w, "  %d  %-8s %-11s %s\n", m.Depth, m.Level, m.Value, m.Key)
	}
	return nil
}

func init() {
	addMarkersFlag(resolveCmd)
	addFormatFlag(resolveCmd, &vaultmonFlags.format.resolve, formatText, formatText, formatYAML, formatJSON)
	metadataCmd.AddCommand(resolveCmd)
}
