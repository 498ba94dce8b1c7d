package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var cacheFlag string
	var serverFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &cacheFlag, &serverFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "git-ignore",
		Short:         "Quickly and easily add templates to .gitignore",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "User configuration file path")
	rootCmd.PersistentFlags().StringVar(&cacheFlag, "cache", "", "Template cache file path")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Base URL of the template catalog service")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newUpdateCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newAliasCommand(ctx))
	rootCmd.AddCommand(newTemplateCommand(ctx))
	rootCmd.AddCommand(newInitCommand(ctx))

	return rootCmd
}
