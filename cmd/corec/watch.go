package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coreclang/corec/ast"
	"github.com/coreclang/corec/digest"
	"github.com/coreclang/corec/watch"
)

func newWatchCmd(langDefPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse and print a source file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var mu sync.Mutex
			seen := digest.NewCache[struct{}]()

			reparse := func() {
				src, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return
				}

				mu.Lock()
				_, unchanged := seen.Get(src)
				seen.Put(src, struct{}{})
				mu.Unlock()
				if unchanged {
					return
				}

				block, err := parseFile(*langDefPath, path)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return
				}
				ast.PrintTree(cmd.OutOrStdout(), block)
			}
			reparse()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch.File(ctx, path, reparse)
		},
	}
}
