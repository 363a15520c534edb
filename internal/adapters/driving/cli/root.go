// Package cli implements the docsim command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/adapters/driven/config/file"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/adapters/driven/storage/memory"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/adapters/driven/storage/sqlite"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/ports/driving"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/core/services"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/logger"
	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/similarity"
)

// version is set at build time via -ldflags.
var version = "dev"

// Flags shared by all commands.
var (
	flagVerbose bool
	flagConfig  string
	flagDataDir string
)

// Application wiring, populated by initApp before any RunE executes.
var (
	appConfig       *file.Config
	appStore        *sqlite.Store
	analysisEngine  *similarity.Engine
	documentService driving.DocumentService
	analyzerService *services.AnalysisOrchestrator
)

var rootCmd = &cobra.Command{
	Use:   "docsim",
	Short: "Detect near-duplicate documents",
	Long: `docsim finds overlapping and near-duplicate documents in a collection.
Documents are compared pairwise using TF-IDF weighted cosine similarity;
pairs scoring at or above the configured threshold are flagged.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		switch cmd.CommandPath() {
		// Help and version need no wiring at all.
		case "docsim version", "docsim help":
			return nil
		// The job commands query a running server over HTTP; they only
		// need the config for the default server address.
		case "docsim results", "docsim jobs", "docsim jobs rm":
			return loadConfig()
		}
		return initApp()
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		closeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default ~/.docsim/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default ~/.docsim/data)")
}

// loadConfig resolves the config path and populates appConfig.
func loadConfig() error {
	configPath := flagConfig
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		configPath = filepath.Join(home, ".docsim", file.DefaultConfigName)
	}

	cfg, err := file.Load(configPath)
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

// initApp loads the configuration and wires storage, engine and services.
func initApp() error {
	if err := loadConfig(); err != nil {
		return err
	}
	cfg := appConfig

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}
	appStore = store
	logger.Debug("Document store: %s", store.Path())

	analysisEngine = similarity.New(similarity.Options{
		MinTokenLength:    cfg.Analysis.MinTokenLength,
		MaxVocabularySize: cfg.Analysis.MaxVocabularySize,
	})

	documentService = services.NewDocumentManager(store.DocumentStore())
	analyzerService = services.NewAnalysisOrchestrator(
		store.DocumentStore(),
		memory.NewJobStore(),
		analysisEngine,
		cfg.Analysis.MaxConcurrentJobs,
	)

	return nil
}

// closeApp releases everything initApp opened.
func closeApp() {
	if analyzerService != nil {
		analyzerService.Wait()
	}
	if analysisEngine != nil {
		_ = analysisEngine.Close()
	}
	if appStore != nil {
		_ = appStore.Close()
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
