package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAliasCommand(ctx *commandContext) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage local template aliases",
	}

	aliasCmd.AddCommand(newAliasListCommand(ctx))
	aliasCmd.AddCommand(newAliasAddCommand(ctx))
	aliasCmd.AddCommand(newAliasRemoveCommand(ctx))

	return aliasCmd
}

func newAliasListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured aliases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensureStores(cmd); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names := ctx.user.AliasNames()
			if len(names) == 0 {
				fmt.Fprintln(out, "No aliases configured")
				return nil
			}

			if isTTY(out) {
				rows := make([][]string, 0, len(names))
				for _, name := range names {
					members, _ := ctx.user.AliasMembers(name)
					rows = append(rows, []string{name, strings.Join(members, ", ")})
				}
				fmt.Fprintln(out, renderTable([]string{"Alias", "Templates"}, rows))
				return nil
			}
			for _, name := range names {
				members, _ := ctx.user.AliasMembers(name)
				fmt.Fprintf(out, "%s = %s\n", name, strings.Join(members, ", "))
			}
			return nil
		},
	}
}

func newAliasAddCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add <name> <template>...",
		Short: "Add an alias expanding to an ordered list of templates",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensureStores(cmd); err != nil {
				return err
			}
			name, members := args[0], args[1:]
			if err := ctx.user.AddAlias(name, members, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created alias %s for %s\n", name, strings.Join(members, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing alias with the same name")
	return cmd
}

func newAliasRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove an alias",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensureStores(cmd); err != nil {
				return err
			}
			removed, err := ctx.user.RemoveAlias(args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed alias %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No alias named %s\n", args[0])
			}
			return nil
		},
	}
}
