// Package cmd implements the command-line interface for couchpad.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/couchpad-app/couchpad/color"
	"github.com/couchpad-app/couchpad/constant"
	"github.com/couchpad-app/couchpad/key"
	"github.com/couchpad-app/couchpad/log"
	"github.com/couchpad-app/couchpad/mini"
	"github.com/couchpad-app/couchpad/style"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("socket", "s", "", "Path to mpv's JSON IPC socket")
	lo.Must0(viper.BindPFlag(key.PlayerSocket, rootCmd.PersistentFlags().Lookup("socket")))

	rootCmd.PersistentFlags().Bool("no-dlna", false, "Disable DLNA renderer discovery")
}

// rootCmd defines the entry point: it attaches the overlay to a running mpv.
var rootCmd = &cobra.Command{
	Use:   constant.Couchpad,
	Short: "A gamepad-driven control overlay for mpv",
	Long: "Couchpad attaches to a running mpv instance over its JSON IPC socket\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - and puts the whole remote on a gamepad."),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("no-dlna")) {
			viper.Set(key.DlnaEnable, false)
		}

		handleErr(mini.Run(&mini.Options{
			Socket: lo.Must(cmd.Flags().GetString("socket")),
		}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
