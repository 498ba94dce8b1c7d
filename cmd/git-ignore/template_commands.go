package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTemplateCommand(ctx *commandContext) *cobra.Command {
	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Manage local custom templates",
	}

	templateCmd.AddCommand(newTemplateListCommand(ctx))
	templateCmd.AddCommand(newTemplateAddCommand(ctx))
	templateCmd.AddCommand(newTemplateRemoveCommand(ctx))

	return templateCmd
}

func newTemplateListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List custom templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensureStores(cmd); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names := ctx.user.TemplateNames()
			if len(names) == 0 {
				fmt.Fprintln(out, "No custom templates configured")
				return nil
			}

			if isTTY(out) {
				rows := make([][]string, 0, len(names))
				for _, name := range names {
					content, _ := ctx.user.TemplateContent(name)
					lines := strings.Count(content, "\n")
					if content != "" && !strings.HasSuffix(content, "\n") {
						lines++
					}
					rows = append(rows, []string{name, strconv.Itoa(lines)})
				}
				fmt.Fprintln(out, renderTable([]string{"Template", "Lines"}, rows))
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newTemplateAddCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add <name> <file>",
		Short: "Add a custom template from a file (use - for stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensureStores(cmd); err != nil {
				return err
			}
			name, source := args[0], args[1]

			var content []byte
			var err error
			if source == "-" {
				content, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				content, err = os.ReadFile(source)
				if err != nil {
					return fmt.Errorf("read template file: %w", err)
				}
			}

			if err := ctx.user.AddTemplate(name, string(content), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created template %s (%d bytes)\n", name, len(content))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing template with the same name")
	return cmd
}

func newTemplateRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a custom template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ensureStores(cmd); err != nil {
				return err
			}
			removed, err := ctx.user.RemoveTemplate(args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed template %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No template named %s\n", args[0])
			}
			return nil
		},
	}
}
