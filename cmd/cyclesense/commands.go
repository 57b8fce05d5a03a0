package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclesense/internal/cli"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cyclesense",
		Short:         "Cycle-aware nutrition guidance and thyroid/PCOS screening service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		newServeCommand(),
		newResetPasswordCommand(),
		newCreateUserCommand(),
		newRulesCommand(),
	)
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newResetPasswordCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Issue a temporary password that must be changed on next login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunResetPasswordCommand(defaultDBPath(), email, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newCreateUserCommand() *cobra.Command {
	var email string
	var displayName string
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account, prompting for the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunCreateUserCommand(defaultDBPath(), email, displayName, os.Stdin, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&displayName, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRulesCommand() *cobra.Command {
	rules := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the scoring and guidance tables",
	}
	rules.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the rule tables (RULES_DIR or embedded)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunRulesCheckCommand(getEnv("RULES_DIR", ""), cmd.OutOrStdout())
		},
	})
	return rules
}
