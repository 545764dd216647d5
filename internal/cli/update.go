package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydrate-app/hydrate/internal/updater"
)

var updateCheckOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update hydrate to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(styleLabel.Render("Checking for updates..."))

		result, err := updater.Check()
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !result.Available {
			fmt.Printf("%s (v%s).\n", styleSuccess.Render("Already up to date"), result.CurrentVersion)
			return nil
		}

		fmt.Printf("%s v%s → v%s\n", styleUpdate.Render("Update available:"),
			result.CurrentVersion, result.LatestVersion)
		fmt.Printf("%s %s\n", styleLabel.Render("Release:"), styleValue.Render(result.ReleaseURL))

		if updateCheckOnly {
			return nil
		}

		asset := updater.FindAsset(result.Release, updater.AssetName())
		if asset == nil {
			return fmt.Errorf("binary not found in release (expected %s)", updater.AssetName())
		}

		fmt.Printf("Downloading %s...\n", asset.Name)
		tmpPath, err := updater.Download(asset)
		if err != nil {
			return fmt.Errorf("failed to download update: %w", err)
		}
		defer os.Remove(tmpPath)

		fmt.Println("Installing...")
		if err := updater.ReplaceSelf(tmpPath); err != nil {
			return fmt.Errorf("failed to install update: %w", err)
		}

		fmt.Printf("%s Restart hydrate to run v%s.\n",
			styleSuccess.Render("Updated."), result.LatestVersion)
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "Only check, do not install")
}
