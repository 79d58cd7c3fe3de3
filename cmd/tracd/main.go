// tracd is the platform binary: metadata, data, and gateway services in
// one process, selected and wired by the platform config file.
package main

import (
	"github.com/spf13/cobra"

	"tracd.io/tracd/pkg/process"
)

func main() {
	root := &cobra.Command{
		Use:           "tracd",
		Short:         "TRAC data and metadata platform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().Bool("dev", false, "development mode logging")

	root.AddCommand(newRunCmd())

	process.Execute(root)
}
