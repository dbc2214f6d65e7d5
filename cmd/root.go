package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"repopack/code_compressor"
	"repopack/config"
	"repopack/constants/lipgloss"
)

const version = "1.2.0"

// RootDependencies holds the resolved configuration shared by all commands.
type RootDependencies struct {
	Config *config.Config
	Cwd    string
}

var rootCmd = &cobra.Command{
	Use:   "repopack [directories...]",
	Short: "Pack a source tree into a single AI-friendly file",
	Long: `Repopack walks one or more directories (or a freshly cloned remote repository),
filters the tree through layered ignore and include rules, optionally reduces each
source file to its structural skeleton, and renders everything into a single bounded
artifact ready to be used as LLM context.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Println("repopack " + version)
			return nil
		}

		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return fmt.Errorf("failed to initialize application dependencies")
		}
		return handlePackCommand(rootDependencies, cmd, args)
	},
	SilenceUsage: true,
}

// handleRootCommand loads the environment and the configuration shared by
// every command.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	// Local .env overrides for environment-driven settings
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg := config.LoadConfigs(cmd.Root(), cwd)

	return &RootDependencies{
		Config: cfg,
		Cwd:    cwd,
	}
}

// resolveCacheDir picks the configured cache directory, defaulting to the
// per-user cache location.
func resolveCacheDir(cfg *config.Config) string {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}
	return code_compressor.DefaultCacheDir()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}
