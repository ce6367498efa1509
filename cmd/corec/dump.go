package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreclang/corec/digest"
	"github.com/coreclang/corec/dump"
	"github.com/coreclang/corec/lexer"
)

func newDumpCmd(langDefPath *string) *cobra.Command {
	var format string
	var tree bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a structured token or AST dump (json or cbor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := dump.Format(format)
			if f != dump.JSON && f != dump.CBOR {
				return fmt.Errorf("unsupported --format %q (want json or cbor)", format)
			}

			if tree {
				block, err := parseFile(*langDefPath, args[0])
				if err != nil {
					return err
				}
				src, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				return dump.Encode(cmd.OutOrStdout(), f, dump.Tree(block, digest.String(src)))
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			l, err := loadLanguage(*langDefPath)
			if err != nil {
				return err
			}
			toks := lexer.Tokenize(l, src)
			return dump.Encode(cmd.OutOrStdout(), f, dump.Tokens(toks, digest.String(src)))
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or cbor")
	cmd.Flags().BoolVar(&tree, "tree", false, "dump the parsed AST instead of the token stream")
	return cmd
}
