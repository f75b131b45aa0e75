package main

import (
	"fmt"
	"os"

	"github.com/agenthands/conceptgraph/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	provider    string
	temperature float64
	apiKey      string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "conceptgraph",
	Short: "Extract concept graphs from text with an LLM",
	Long: `conceptgraph asks an LLM provider to turn free-form text into a graph of
concepts (nodes) and relationships (edges), and validates the result.

Examples:
  conceptgraph extract notes.txt                 # Extract with config defaults
  cat notes.txt | conceptgraph extract           # Read text from stdin
  conceptgraph extract --provider azure notes.txt
  conceptgraph prompt notes.txt                  # Show the prompt, no API call`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.toml", "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error, none)")
}

// loadConfig merges the config file, the environment and command-line flags,
// in that order of precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("provider") {
		if provider != cfg.LLM.Provider {
			cfg.LLM = config.LLMConfig{Provider: provider, Temperature: cfg.LLM.Temperature}
		}
	}
	if flags.Changed("temperature") {
		cfg.LLM.Temperature = temperature
	}
	if flags.Changed("api-key") {
		cfg.LLM.APIKey = apiKey
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
