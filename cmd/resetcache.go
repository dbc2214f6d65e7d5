package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"repopack/code_compressor"
	"repopack/constants/lipgloss"
	"repopack/utils"
)

// resetCacheCmd represents the reset-cache command
var resetCacheCmd = &cobra.Command{
	Use:   "reset-cache",
	Short: "Remove the persisted compression cache",
	Long: `The 'reset-cache' command removes the compression results cached from previous
runs. Use it when the cache looks stale or corrupted, or to reclaim disk space;
the next run rebuilds it from scratch.`,
	Run: func(cmd *cobra.Command, args []string) {
		var force bool
		var stats bool

		force, _ = cmd.Flags().GetBool("force")
		stats, _ = cmd.Flags().GetBool("stats")

		handleResetCacheCommand(force, stats, cmd)
	},
}

func init() {
	resetCacheCmd.Flags().BoolP("force", "f", false, "Reset the cache without confirmation")
	resetCacheCmd.Flags().BoolP("stats", "s", false, "Show cache statistics instead of resetting")

	rootCmd.AddCommand(resetCacheCmd)
}

func handleResetCacheCommand(force bool, showStats bool, cmd *cobra.Command) {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return
	}

	cacheDir := resolveCacheDir(rootDependencies.Config)

	// Only show stats, skip the actual reset
	if showStats {
		fmt.Println(lipgloss.Cyan.Render("Cache Statistics:"))
		fmt.Printf("  Cache Directory: %s\n", cacheDir)

		files, size, err := cacheDirStats(cacheDir)
		if err != nil {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Warning: could not read cache directory: %v", err)))
			return
		}
		fmt.Printf("  Cached Files: %d\n", files)
		fmt.Printf("  Total Size: %.2f MB\n", float64(size)/(1024*1024))
		return
	}

	// Confirm reset (if not forced)
	if !force {
		ok, err := utils.ConfirmPrompt(bufio.NewReader(os.Stdin),
			fmt.Sprintf("Are you sure you want to remove the compression cache at %s?", cacheDir))
		if err != nil || !ok {
			fmt.Println(lipgloss.Yellow.Render("Cache reset cancelled."))
			return
		}
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).WithRemoveWhenDone(true)

	spinnerInstance, _ := spinner.Start("Resetting compression cache...")

	if err := code_compressor.ClearDir(cacheDir); err != nil {
		spinnerInstance.Stop()
		fmt.Print("\r")
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error resetting cache: %v", err)))
		return
	}

	spinnerInstance.Stop()
	fmt.Print("\r")
	fmt.Println(lipgloss.Green.Render("✓ Compression cache has been successfully reset!"))
}

// cacheDirStats counts regular files and their cumulative size under dir.
// A missing directory reports zero entries rather than an error.
func cacheDirStats(dir string) (int, int64, error) {
	var files int
	var size int64

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files++
		size += info.Size()
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return 0, 0, err
	}
	return files, size, nil
}
