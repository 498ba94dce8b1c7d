package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "update",
		Aliases: []string{"refresh"},
		Short:   "Fetch the current template catalog from the remote service",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensureStores(cmd); err != nil {
				return err
			}
			if err := ctx.cache.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated template catalog: %d templates available\n", ctx.cache.Len())
			return nil
		},
	}
}
