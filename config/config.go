package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repopack/constants/lipgloss"
)

// Output styles accepted by the renderer.
const (
	StyleXML      = "xml"
	StyleMarkdown = "markdown"
	StyleJSON     = "json"
	StylePlain    = "plain"
)

// Config represents the structure of the configuration file
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Ignore   IgnoreConfig   `mapstructure:"ignore"`
	Security SecurityConfig `mapstructure:"security"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

type OutputConfig struct {
	FilePath                string `mapstructure:"filePath"`
	Style                   string `mapstructure:"style"`
	TopFilesLength          int    `mapstructure:"topFilesLength"`
	ShowLineNumbers         bool   `mapstructure:"showLineNumbers"`
	RemoveComments          bool   `mapstructure:"removeComments"`
	RemoveEmptyLines        bool   `mapstructure:"removeEmptyLines"`
	Compress                bool   `mapstructure:"compress"`
	CopyToClipboard         bool   `mapstructure:"copyToClipboard"`
	HeaderText              string `mapstructure:"headerText"`
	InstructionFilePath     string `mapstructure:"instructionFilePath"`
	IncludeEmptyDirectories bool   `mapstructure:"includeEmptyDirectories"`
	IncludeDiffs            bool   `mapstructure:"includeDiffs"`
	IncludeLogs             bool   `mapstructure:"includeLogs"`
}

type IgnoreConfig struct {
	UseGitignore       bool     `mapstructure:"useGitignore"`
	UseDefaultPatterns bool     `mapstructure:"useDefaultPatterns"`
	CustomPatterns     []string `mapstructure:"customPatterns"`
}

type SecurityConfig struct {
	EnableSecurityCheck bool `mapstructure:"enableSecurityCheck"`
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Output: OutputConfig{
		FilePath:       "repopack-output.xml",
		Style:          StyleXML,
		TopFilesLength: 5,
	},
	Ignore: IgnoreConfig{
		UseGitignore:       true,
		UseDefaultPatterns: true,
		CustomPatterns:     []string{},
	},
	Security: SecurityConfig{
		EnableSecurityCheck: true,
	},
	Cache: CacheConfig{
		Enabled: true,
	},
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("repopack.config") // Name of config file (without extension)
		viper.AddConfigPath(cwd)               // Look in the current working directory

		// Support both JSON and YAML formats
		viper.SetConfigType("json") // Set default type
		if err := viper.ReadInConfig(); err != nil {
			// If JSON fails, try YAML
			viper.SetConfigType("yaml")
			if err := viper.ReadInConfig(); err != nil {
				// If both fail, we'll continue with defaults
				fmt.Println(lipgloss.Yellow.Render("No configuration file found, using defaults"))
			}
		}
	}

	// Read the explicitly specified config file (if any)
	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	applyFlagMerges(rootCmd, config)

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("output.filePath", DefaultConfig.Output.FilePath)
	viper.SetDefault("output.style", DefaultConfig.Output.Style)
	viper.SetDefault("output.topFilesLength", DefaultConfig.Output.TopFilesLength)
	viper.SetDefault("output.showLineNumbers", DefaultConfig.Output.ShowLineNumbers)
	viper.SetDefault("output.removeComments", DefaultConfig.Output.RemoveComments)
	viper.SetDefault("output.removeEmptyLines", DefaultConfig.Output.RemoveEmptyLines)
	viper.SetDefault("output.compress", DefaultConfig.Output.Compress)
	viper.SetDefault("output.copyToClipboard", DefaultConfig.Output.CopyToClipboard)
	viper.SetDefault("output.headerText", DefaultConfig.Output.HeaderText)
	viper.SetDefault("output.instructionFilePath", DefaultConfig.Output.InstructionFilePath)
	viper.SetDefault("output.includeEmptyDirectories", DefaultConfig.Output.IncludeEmptyDirectories)
	viper.SetDefault("output.includeDiffs", DefaultConfig.Output.IncludeDiffs)
	viper.SetDefault("output.includeLogs", DefaultConfig.Output.IncludeLogs)
	viper.SetDefault("ignore.useGitignore", DefaultConfig.Ignore.UseGitignore)
	viper.SetDefault("ignore.useDefaultPatterns", DefaultConfig.Ignore.UseDefaultPatterns)
	viper.SetDefault("ignore.customPatterns", DefaultConfig.Ignore.CustomPatterns)
	viper.SetDefault("security.enableSecurityCheck", DefaultConfig.Security.EnableSecurityCheck)
	viper.SetDefault("cache.enabled", DefaultConfig.Cache.Enabled)
	viper.SetDefault("cache.dir", DefaultConfig.Cache.Dir)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("output.filePath", "REPOPACK_OUTPUT_FILE")
	_ = viper.BindEnv("output.style", "REPOPACK_STYLE")
	_ = viper.BindEnv("ignore.useGitignore", "REPOPACK_USE_GITIGNORE")
	_ = viper.BindEnv("ignore.useDefaultPatterns", "REPOPACK_USE_DEFAULT_PATTERNS")
	_ = viper.BindEnv("security.enableSecurityCheck", "REPOPACK_SECURITY_CHECK")
	_ = viper.BindEnv("cache.enabled", "REPOPACK_CACHE")
	_ = viper.BindEnv("cache.dir", "REPOPACK_CACHE_DIR")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("output.filePath", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("output.style", rootCmd.PersistentFlags().Lookup("style"))
	_ = viper.BindPFlag("output.topFilesLength", rootCmd.PersistentFlags().Lookup("top-files-len"))
	_ = viper.BindPFlag("output.showLineNumbers", rootCmd.PersistentFlags().Lookup("output-show-line-numbers"))
	_ = viper.BindPFlag("output.removeComments", rootCmd.PersistentFlags().Lookup("remove-comments"))
	_ = viper.BindPFlag("output.removeEmptyLines", rootCmd.PersistentFlags().Lookup("remove-empty-lines"))
	_ = viper.BindPFlag("output.compress", rootCmd.PersistentFlags().Lookup("compress"))
	_ = viper.BindPFlag("output.copyToClipboard", rootCmd.PersistentFlags().Lookup("copy"))
	_ = viper.BindPFlag("output.headerText", rootCmd.PersistentFlags().Lookup("header-text"))
	_ = viper.BindPFlag("output.instructionFilePath", rootCmd.PersistentFlags().Lookup("instruction-file-path"))
	_ = viper.BindPFlag("output.includeEmptyDirectories", rootCmd.PersistentFlags().Lookup("include-empty-directories"))
	_ = viper.BindPFlag("output.includeDiffs", rootCmd.PersistentFlags().Lookup("include-diffs"))
	_ = viper.BindPFlag("output.includeLogs", rootCmd.PersistentFlags().Lookup("include-logs"))
	_ = viper.BindPFlag("security.enableSecurityCheck", rootCmd.PersistentFlags().Lookup("security-check"))
}

// applyFlagMerges handles the flags whose semantics the binder cannot
// express: --ignore extends the configured patterns instead of replacing
// them, and the no-* switches force their layer off.
func applyFlagMerges(rootCmd *cobra.Command, config *Config) {
	flags := rootCmd.PersistentFlags()

	if ignoreList, err := flags.GetString("ignore"); err == nil && ignoreList != "" {
		for _, raw := range strings.Split(ignoreList, ",") {
			if trimmed := strings.TrimSpace(raw); trimmed != "" {
				config.Ignore.CustomPatterns = append(config.Ignore.CustomPatterns, trimmed)
			}
		}
	}
	if noGitignore, err := flags.GetBool("no-gitignore"); err == nil && noGitignore {
		config.Ignore.UseGitignore = false
	}
	if noDefaults, err := flags.GetBool("no-default-patterns"); err == nil && noDefaults {
		config.Ignore.UseDefaultPatterns = false
	}
	if noCache, err := flags.GetBool("no-cache"); err == nil && noCache {
		config.Cache.Enabled = false
	}
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains the settings for the application.")

	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path, a directory for multi-intent runs, or '-' for stdout.")
	rootCmd.PersistentFlags().String("style", DefaultConfig.Output.Style, "Output style: xml, markdown, json or plain.")
	rootCmd.PersistentFlags().Int("top-files-len", DefaultConfig.Output.TopFilesLength, "How many of the heaviest files to list in the console summary.")
	rootCmd.PersistentFlags().Bool("output-show-line-numbers", false, "Prefix every line with its number.")
	rootCmd.PersistentFlags().Bool("remove-comments", false, "Strip comments before rendering.")
	rootCmd.PersistentFlags().Bool("remove-empty-lines", false, "Drop blank lines before rendering.")
	rootCmd.PersistentFlags().Bool("compress", false, "Reduce every supported file to its structural skeleton.")
	rootCmd.PersistentFlags().Bool("copy", false, "Copy the generated output to the clipboard.")
	rootCmd.PersistentFlags().Bool("include-empty-directories", false, "List empty directories in the output.")
	rootCmd.PersistentFlags().String("header-text", "", "Text placed at the top of the generated output.")
	rootCmd.PersistentFlags().String("instruction-file-path", "", "File whose content is embedded as instructions in the output.")
	rootCmd.PersistentFlags().Bool("include-diffs", false, "Append the working tree diff to the output.")
	rootCmd.PersistentFlags().Bool("include-logs", false, "Append recent commit history to the output.")
	rootCmd.PersistentFlags().Bool("security-check", DefaultConfig.Security.EnableSecurityCheck, "Drop files that look like they contain credentials.")

	rootCmd.PersistentFlags().StringP("ignore", "i", "", "Comma-separated globs excluded on top of the configured patterns.")
	rootCmd.PersistentFlags().String("include", "", "Comma-separated globs that defeat every ignore rule.")
	rootCmd.PersistentFlags().Bool("no-gitignore", false, "Do not honor .gitignore files.")
	rootCmd.PersistentFlags().Bool("no-default-patterns", false, "Do not honor .repopackignore files.")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Bypass the compression cache for this run.")
	rootCmd.PersistentFlags().String("remote", "", "Clone this repository URL and pack it instead of local directories.")
	rootCmd.PersistentFlags().String("remote-branch", "", "Branch to clone when --remote is used.")
	rootCmd.PersistentFlags().String("focus", "", "Comma-separated globs kept in full text while everything else compresses.")
	rootCmd.PersistentFlags().String("intent", "", "Task description, task file, or directory of task files used to build prompts.")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print per-file diagnostics.")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}
