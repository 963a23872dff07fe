package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"releaseinstallergo/config"
	"releaseinstallergo/internal/logger"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "relinstall",
		Short:         "Pick a GitHub release asset with a fuzzy finder and install it.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "No command specified")
		},
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInstallCmd())
	return cmd
}

// ExecuteContext runs the command tree and returns the process exit code:
// 1 when the command failed or ctx was canceled by an interrupt, 0 otherwise.
func ExecuteContext(ctx context.Context) int {
	config.Init()
	logger.Init(config.Load().LogLevel)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil && ctx.Err() != nil {
		err = fmt.Errorf("interrupted: %w", context.Cause(ctx))
	}
	if err != nil {
		logger.Log.Debug("command failed", "err", err)
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		return 1
	}
	return 0
}
