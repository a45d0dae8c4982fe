// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

const (
	bash = "bash"
	zsh  = "zsh"
	fish = "fish"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion SHELL",
	Short: "generate completions for the vaultmon command",
	Long: `Generate completions for your shell

	For bash add the following line to your ~/.bashrc

		eval "$(vaultmon completion bash)"

	For zsh add generate a file:

		vaultmon completion zsh > /usr/local/share/zsh/site-functions/_vaultmon

	`,
	ValidArgs: []string{bash, zsh, fish},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),

	Run: func(cmd *cobra.Command, args []string) {
		var err error
		out := cmd.OutOrStdout()
		switch args[0] {
		case bash:
			err = rootCmd.GenBashCompletion(out)
		case zsh:
			err = rootCmd.GenZshCompletion(out)
		case fish:
			err = rootCmd.GenFishCompletion(out, true)
		}
		if err != nil {
			wrapFatalln("failed to generate "+args[0]+" completion", err)
		}
	},
}

func init() {
	completionCmd.Hidden = true
	rootCmd.AddCommand(completionCmd)
}
