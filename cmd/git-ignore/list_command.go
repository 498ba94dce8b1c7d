package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"gitignore/internal/resolve"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var simple bool
	var auto bool

	cmd := &cobra.Command{
		Use:     "list [query...]",
		Aliases: []string{"ls"},
		Short:   "List templates whose name starts with any given query",
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := withDetected(args, auto)
			if err != nil {
				return err
			}
			if err := ctx.primeCatalog(cmd.Context(), cmd); err != nil {
				return err
			}
			resolver, err := ctx.resolver(cmd)
			if err != nil {
				return err
			}

			entries := resolver.List(queries, simple)
			out := cmd.OutOrStdout()
			colored := isTTY(out)
			for _, entry := range entries {
				fmt.Fprintln(out, renderName(entry, colored))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&simple, "simple", "s", false, "Ignore user aliases and custom templates")
	cmd.Flags().BoolVarP(&auto, "auto", "a", false, "Add templates detected from the current directory")
	return cmd
}

// renderName colors user-defined names on a terminal so they stand out from
// the remote catalog; piped output stays plain for scripting.
func renderName(entry resolve.Entry, colored bool) string {
	if !colored {
		return entry.Name
	}
	switch entry.Origin {
	case resolve.OriginAlias:
		return text.FgYellow.Sprint(entry.Name)
	case resolve.OriginCustom:
		return text.FgBlue.Sprint(entry.Name)
	default:
		return entry.Name
	}
}
