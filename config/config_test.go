package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRootCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "repopack"}
	InitFlags(cmd)
	return cmd
}

// Test defaults apply when no config file exists
func TestLoadConfigs_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tempDir, err := ioutil.TempDir("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cfg := LoadConfigs(newTestRootCmd(), tempDir)

	assert.Equal(t, "repopack-output.xml", cfg.Output.FilePath)
	assert.Equal(t, StyleXML, cfg.Output.Style)
	assert.Equal(t, 5, cfg.Output.TopFilesLength)
	assert.False(t, cfg.Output.Compress)
	assert.True(t, cfg.Ignore.UseGitignore)
	assert.True(t, cfg.Ignore.UseDefaultPatterns)
	assert.True(t, cfg.Security.EnableSecurityCheck)
	assert.True(t, cfg.Cache.Enabled)
}

// Test a JSON config file overrides defaults without touching other keys
func TestLoadConfigs_JSONFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tempDir, err := ioutil.TempDir("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	configJSON := `{
  "output": {"style": "markdown", "topFilesLength": 10},
  "ignore": {"customPatterns": ["*.log"]}
}`
	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "repopack.config.json"), []byte(configJSON), 0644))

	cfg := LoadConfigs(newTestRootCmd(), tempDir)

	assert.Equal(t, StyleMarkdown, cfg.Output.Style)
	assert.Equal(t, 10, cfg.Output.TopFilesLength)
	assert.Equal(t, []string{"*.log"}, cfg.Ignore.CustomPatterns)
	assert.Equal(t, "repopack-output.xml", cfg.Output.FilePath)
	assert.True(t, cfg.Ignore.UseGitignore)
}

// Test a changed flag beats the config file
func TestLoadConfigs_ChangedFlagWins(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tempDir, err := ioutil.TempDir("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	configJSON := `{"output": {"style": "markdown"}}`
	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "repopack.config.json"), []byte(configJSON), 0644))

	cmd := newTestRootCmd()
	require.NoError(t, cmd.PersistentFlags().Set("style", "plain"))
	require.NoError(t, cmd.PersistentFlags().Set("compress", "true"))

	cfg := LoadConfigs(cmd, tempDir)

	assert.Equal(t, StylePlain, cfg.Output.Style)
	assert.True(t, cfg.Output.Compress)
}

// Test --ignore extends the configured patterns and no-* switches force off
func TestLoadConfigs_FlagMerges(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tempDir, err := ioutil.TempDir("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	configJSON := `{"ignore": {"customPatterns": ["*.log"]}}`
	require.NoError(t, ioutil.WriteFile(filepath.Join(tempDir, "repopack.config.json"), []byte(configJSON), 0644))

	cmd := newTestRootCmd()
	require.NoError(t, cmd.PersistentFlags().Set("ignore", "*.tmp, build/**"))
	require.NoError(t, cmd.PersistentFlags().Set("no-gitignore", "true"))
	require.NoError(t, cmd.PersistentFlags().Set("no-cache", "true"))

	cfg := LoadConfigs(cmd, tempDir)

	assert.Equal(t, []string{"*.log", "*.tmp", "build/**"}, cfg.Ignore.CustomPatterns)
	assert.False(t, cfg.Ignore.UseGitignore)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Ignore.UseDefaultPatterns)
}
