package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChenLight-s/qcad"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of qcad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("qcad version %s\n", qcad.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
