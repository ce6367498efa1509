package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreclang/corec/lexer"
)

func newTokenizeCmd(langDefPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Print the token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			l, err := loadLanguage(*langDefPath)
			if err != nil {
				return err
			}
			for _, t := range lexer.Tokenize(l, src) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %6d  %q\n", t.Kind, t.Pos.Offset, t.Text)
			}
			return nil
		},
	}
}
