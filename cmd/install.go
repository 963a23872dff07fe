package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"releaseinstallergo/config"
	"releaseinstallergo/internal/install"
	"releaseinstallergo/internal/logger"
	"releaseinstallergo/internal/releases"
	"releaseinstallergo/internal/selector"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <owner/name>",
		Short: "Choose a release and an asset of a GitHub repository and install it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := releases.ParseRepo(args[0])
			if err != nil {
				return err
			}

			inst, err := newInstaller(cmd, config.Load())
			if err != nil {
				return err
			}

			res, err := inst.Run(cmd.Context(), repo)
			if err != nil {
				return err
			}
			logger.Log.Info("install done", "tag", res.Release.TagName, "asset", res.Asset.Name, "strategy", res.Strategy.String(), "path", res.Path)
			return nil
		},
	}
}

func newInstaller(cmd *cobra.Command, cfg config.Config) (*install.Installer, error) {
	src, err := releases.NewGitHubSource(releases.GitHubOptions{
		APIURL:   cfg.APIURL,
		Token:    cfg.Token,
		PerPage:  cfg.PerPage,
		Progress: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	prompt, err := selector.New(cfg.Selector, cfg.FzfPath)
	if err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	return &install.Installer{
		Source:   releases.Ordered(src, cfg.ReleaseOrder),
		Prompt:   prompt,
		Packages: install.Dpkg{Elevate: cfg.Elevate},
		Archives: install.Tar{},
		WorkDir:  wd,
		BinDir:   cfg.BinDir,
		Out:      cmd.OutOrStdout(),
	}, nil
}
