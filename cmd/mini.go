package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/couchpad-app/couchpad/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd launches the overlay inside the terminal.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Attach the overlay inside the terminal",
	Long:  `Drive a running mpv from the terminal, with the keyboard standing in for the gamepad.`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(mini.Run(&mini.Options{
			Socket: lo.Must(cmd.Flags().GetString("socket")),
		}))
	},
}
