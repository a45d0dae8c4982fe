package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/vaultmon/pkg/reconcile"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect NOTE",
	Short: "Compare the hierarchy declared by a note with the resolved one",
	Long: `Show, for each hierarchy field, the value declared by a note next to the value resolved from its location,
and where the resolved value comes from. Nothing is written.`,
	Example: `% vaultmon metadata inspect --vault ~/notes MBA/Accounting/Class01/note.md
note: MBA/Accounting/Class01/note.md
FIELD  	DECLARED	RESOLVED  	SOURCE	STATUS
program	Old     	MBA       	marker	stale
course 	-       	Accounting	marker	stale
class  	Class01 	Class01   	marker	ok`,
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
		ins, err := session.walker().Inspect(context.Background(), key, session.rctx)
		if err != nil {
			wrapFatalln("inspect note", err)
			return
		}
		if err = render(cmd.OutOrStdout(), vaultmonFlags.format.inspect, ins, inspectionTable(ins)); err != nil {
			wrapFatalln("print inspection", err)
			return
		}
	},
}

func inspectionTable(ins reconcile.Inspection) func(io.Writer) error {
	return func(w io.Writer) error {
		kind := "note"
		if ins.Marker {
			kind = string(ins.MarkerLevel) + " index"
		}
		fmt.Fprintf(w, "%s: %s\n", kind, ins.Path)
		if ins.Recovered {
			fmt.Fprintln(w, color.YellowString("malformed frontmatter: fields recovered field by field"))
		}

		table := uitable.New()
		table.MaxColWidth = 60
		table.Separator = "\t"
		table.AddRow("FIELD", "DECLARED", "RESOLVED", "SOURCE", "STATUS")
		for _, f := range ins.Fields {
			declared, resolved, source := "-", "-", "-"
			if f.HasExisting {
				declared = f.Existing
			}
			if f.Resolved.Resolved() {
				resolved = f.Resolved.Value
				source = string(f.Resolved.Source)
			}
			st := "ok"
			switch {
			case !f.Resolved.Resolved():
				st = "unresolved"
			case f.Stale():
				st = color.YellowString("stale")
			}
			table.AddRow(f.Field, declared, resolved, source, st)
		}
		_, err := fmt.Fprintln(w, table)
		return err
	}
}

func init() {
	addFormatFlag(inspectCmd, &vaultmonFlags.format.inspect, formatTable, formatTable, formatYAML, formatJSON)
	metadataCmd.AddCommand(inspectCmd)
}
