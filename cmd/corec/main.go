// Command corec is the external driver around the core tokenizer and
// parser: a thin cobra CLI exposing tokenize, parse, dump, and watch.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var langDefPath string

	root := &cobra.Command{
		Use:           "corec",
		Short:         "Tokenize and parse corec source files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&langDefPath, "langdef", "",
		"path to a YAML language definition file (default: built-in symbol/keyword tables)")

	root.AddCommand(
		newTokenizeCmd(&langDefPath),
		newParseCmd(&langDefPath),
		newDumpCmd(&langDefPath),
		newWatchCmd(&langDefPath),
	)
	return root
}
