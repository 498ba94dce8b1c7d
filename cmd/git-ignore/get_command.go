package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitignore/internal/resolve"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	var simple bool
	var auto bool

	cmd := &cobra.Command{
		Use:   "get <name>...",
		Short: "Print the gitignore content for the named templates",
		Long: "Assembles the gitignore content for every requested template, alias, or " +
			"custom template and prints it to stdout. All names must match exactly; the " +
			"command fails without output when any name is unknown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := withDetected(args, auto)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return errors.New("no templates requested (pass names or use --auto)")
			}
			if err := ctx.primeCatalog(cmd.Context(), cmd); err != nil {
				return err
			}
			resolver, err := ctx.resolver(cmd)
			if err != nil {
				return err
			}

			output, err := resolver.Get(cmd.Context(), names, simple)
			if err != nil {
				if errors.Is(err, resolve.ErrUnknownTemplate) && ctx.refreshErr != nil {
					return fmt.Errorf("%v (catalog unavailable: %w)", err, ctx.refreshErr)
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&simple, "simple", "s", false, "Ignore user aliases and custom templates")
	cmd.Flags().BoolVarP(&auto, "auto", "a", false, "Add templates detected from the current directory")
	return cmd
}
