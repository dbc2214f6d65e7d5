package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"repopack/code_compressor"
	"repopack/constants/lipgloss"
	"repopack/file_discovery"
	"repopack/output"
	"repopack/pattern"
	"repopack/pipeline"
	"repopack/pipeline/models"
	"repopack/utils"
)

// handlePackCommand runs the whole pack flow: resolve roots, discover files,
// process them concurrently, order the results, and render one artifact per
// intent task.
func handlePackCommand(deps *RootDependencies, cmd *cobra.Command, args []string) error {
	// Create a context with cancel function
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	flags := cmd.Root().PersistentFlags()
	verbose, _ := flags.GetBool("verbose")
	remote, _ := flags.GetString("remote")
	remoteBranch, _ := flags.GetString("remote-branch")
	includeList, _ := flags.GetString("include")
	focusList, _ := flags.GetString("focus")
	intentArg, _ := flags.GetString("intent")
	outputFlag, _ := flags.GetString("output")

	cfg := deps.Config

	tasks, bulkMode, err := collectIntentTasks(intentArg)
	if err != nil {
		return err
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	// Resolve roots: a remote clone replaces local directories
	var roots []string
	if remote != "" {
		cloneBase, err := os.MkdirTemp("", "repopack-remote-")
		if err != nil {
			return fmt.Errorf("failed to create clone directory: %w", err)
		}
		defer os.RemoveAll(cloneBase)

		target := filepath.Join(cloneBase, "repo")
		spinnerClone, _ := spinner.Start("Cloning remote repository...")
		if err := utils.NewGitOperations(deps.Cwd).Clone(ctx, remote, target, remoteBranch); err != nil {
			spinnerClone.Stop()
			fmt.Print("\r")
			return err
		}
		spinnerClone.Stop()
		fmt.Print("\r")
		roots = []string{target}
	} else {
		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}
		for _, dir := range dirs {
			if abs, absErr := filepath.Abs(dir); absErr == nil {
				roots = append(roots, abs)
			} else {
				roots = append(roots, dir)
			}
		}
	}
	baseRoot := roots[0]

	focusPresent := flags.Changed("focus")
	focus := pattern.Compile(focusList)

	// Discovery
	spinnerSearch, _ := spinner.Start("Searching files...")

	paths, err := file_discovery.DiscoverFiles(roots, baseRoot, file_discovery.Rules{
		UseGitignore:       cfg.Ignore.UseGitignore,
		UseDefaultPatterns: cfg.Ignore.UseDefaultPatterns,
		Deny:               pattern.CompileList(cfg.Ignore.CustomPatterns),
		Include:            pattern.Compile(includeList),
		Verbose:            verbose,
	})
	if err != nil {
		spinnerSearch.Stop()
		fmt.Print("\r")
		return err
	}

	spinnerSearch.UpdateText(fmt.Sprintf("Found %d files. Processing...", len(paths)))

	// Processing
	var cache *code_compressor.Cache
	if cfg.Cache.Enabled {
		cache = code_compressor.OpenCache(resolveCacheDir(cfg))
	}

	files := pipeline.Run(ctx, paths, pipeline.Options{
		BaseRoot:         baseRoot,
		Compress:         cfg.Output.Compress,
		RemoveComments:   cfg.Output.RemoveComments,
		RemoveEmptyLines: cfg.Output.RemoveEmptyLines,
		ShowLineNumbers:  cfg.Output.ShowLineNumbers,
		SecurityCheck:    cfg.Security.EnableSecurityCheck,
		Focus:            focus,
		FocusPresent:     focusPresent,
		Cache:            cache,
		Verbose:          verbose,
	})

	if err := cache.Save(); err != nil && verbose {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Warning: could not save compression cache: %v", err)))
	}

	// Ordering & git data
	gitOps := utils.NewGitOperations(baseRoot)
	pipeline.OrderFiles(files, gitOps)

	var gitData output.GitData
	if cfg.Output.IncludeDiffs {
		if diff, diffErr := gitOps.Diff(); diffErr == nil {
			gitData.Diff = &diff
		}
	}
	if cfg.Output.IncludeLogs {
		if log, logErr := gitOps.Log(50); logErr == nil {
			gitData.Log = &log
		}
	}

	spinnerSearch.Stop()
	fmt.Print("\r")

	// Output generation, once per intent task
	if len(tasks) == 0 {
		tasks = []IntentTask{{Name: "default"}}
	}

	totalTokens := 0
	for _, file := range files {
		totalTokens += file.TokenCount
	}
	multiOutput := len(tasks) > 1 || bulkMode

	for _, task := range tasks {
		taskCfg := *cfg
		generatedHeader := buildIntentHeader(task.Content, focusPresent)
		if taskCfg.Output.HeaderText != "" {
			taskCfg.Output.HeaderText = taskCfg.Output.HeaderText + "\n" + generatedHeader
		} else if generatedHeader != "" {
			taskCfg.Output.HeaderText = generatedHeader
		}

		artifact := output.Generate(files, &taskCfg, gitData)

		if taskCfg.Output.CopyToClipboard && !multiOutput {
			if err := clipboard.WriteAll(artifact); err == nil {
				fmt.Println("Output copied to clipboard!")
			}
		}

		if outputFlag == "-" && !multiOutput {
			fmt.Print(artifact)
			continue
		}

		outPath := taskCfg.Output.FilePath
		if multiOutput {
			outPath = multiOutputPath(outputFlag, task.Name, taskCfg.Output.Style)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("failed to create output directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, []byte(artifact), 0644); err != nil {
			return fmt.Errorf("failed to write output %s: %w", outPath, err)
		}
		fmt.Println("Output written to " + outPath)
	}

	if multiOutput {
		fmt.Printf("Processed %d intents.\n", len(tasks))
	}

	fmt.Printf("Total Files: %d\n", len(files))
	fmt.Printf("Total Tokens: %d\n", totalTokens)

	printTopFiles(files, cfg.Output.TopFilesLength)

	return nil
}

// printTopFiles lists the heaviest files so oversized artifacts are easy to
// diagnose.
func printTopFiles(files []models.ProcessedFile, limit int) {
	if limit <= 0 || len(files) == 0 {
		return
	}

	ranked := make([]models.ProcessedFile, len(files))
	copy(ranked, files)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TokenCount > ranked[j].TokenCount })

	if limit > len(ranked) {
		limit = len(ranked)
	}
	fmt.Println(lipgloss.Cyan.Render(fmt.Sprintf("Top %d files by token count:", limit)))
	for i := 0; i < limit; i++ {
		fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("  %d. %s (%d tokens)", i+1, ranked[i].RelativePath, ranked[i].TokenCount)))
	}
}
