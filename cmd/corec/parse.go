package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coreclang/corec/ast"
	"github.com/coreclang/corec/lexer"
	"github.com/coreclang/corec/parser"
)

func newParseCmd(langDefPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := parseFile(*langDefPath, args[0])
			if err != nil {
				return err
			}
			ast.PrintTree(cmd.OutOrStdout(), block)
			return nil
		},
	}
}

// parseFile reads, lexes, and parses one source file into a *ast.Block.
func parseFile(langDefPath, path string) (*ast.Block, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := loadLanguage(langDefPath)
	if err != nil {
		return nil, err
	}
	symbols, keywords := l.Symbols, l.Keywords
	g, err := parser.NewGrammar(symbols, keywords)
	if err != nil {
		return nil, err
	}
	tokens := parser.RemoveWhitespaceAndComments(lexer.Tokenize(l, src))
	return parser.ParseBlock(g, tokens, src)
}
