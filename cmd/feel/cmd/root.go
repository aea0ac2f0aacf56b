// Package cmd is the feel CLI's cobra command tree, structured the way
// the teacher's cmd/dwscript/cmd is: a root command with persistent
// flags plus version info, and one file per subcommand.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "feel",
	Short: "FEEL expression engine",
	Long: `feel evaluates Friendly Enough Expression Language (FEEL) expressions
and unary tests, the expression language defined by the DMN standard.

It embeds the same engine exposed programmatically by pkg/feel: parse once,
evaluate against a variable context, get back a value plus any warnings.`,
	Version: Version,
}

var verbose bool

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
