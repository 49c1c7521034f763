package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChenLight-s/qcad"
)

var rootCmd = &cobra.Command{
	Use:   "qcad",
	Short: "qcad executes drawing scripts against a CAD document",
	Long: `qcad hosts Lua drawing scripts. A script builds up a document through
functions like addLine, addCircle and addSimpleText, and the result can
be written out as SVG or PNG.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable diagnostic logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			qcad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	}
}
