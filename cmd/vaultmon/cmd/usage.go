package cmd

import (
	"path/filepath"
	"strings"

	"github.com/oneconcern/vaultmon/pkg/frontmatter"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// filePrepender opens each page with a frontmatter block, so the generated
// pages can be dropped into a vault as reference notes
func filePrepender(filename string) string {
	h := frontmatter.NewHeader()
	h.Set("title", strings.ReplaceAll(strings.TrimSuffix(filepath.Base(filename), ".md"), "_", " "))
	h.Set("type", "reference")
	h.Set("version", NewVersionInfo().Version)
	b, err := frontmatter.Serialize(h)
	if err != nil {
		return ""
	}
	return string(b) + "\n"
}

// docCmd is a doc generation command powered by cobra
var docCmd = &cobra.Command{
	Use:   "usage",
	Short: "Generates documentation",
	Long: `Command to generate usage documentation.

Every page is a markdown note with a frontmatter block (title, type: reference, version).`,
	Run: func(cmd *cobra.Command, args []string) {
		err := doc.GenMarkdownTreeCustom(rootCmd, vaultmonFlags.doc.docTarget,
			filePrepender,
			func(s string) string { return s },
		)
		if err != nil {
			wrapFatalln("failed to generate doc", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	addTargetFlag(docCmd)
}
