package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agenthands/conceptgraph/internal/config"
	"github.com/agenthands/conceptgraph/internal/core"
	"github.com/agenthands/conceptgraph/internal/core/extraction"
	"github.com/agenthands/conceptgraph/internal/log"
	"github.com/spf13/cobra"
)

var errEmptyInput = errors.New("please enter text first")

// newGenerator is swapped out in tests.
var newGenerator = func(logger log.Logger) *core.Generator {
	return core.NewGenerator(logger)
}

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract a concept graph from a file or stdin",
	Long: `Extract a concept graph from the given file, or from stdin when no file
is named, and print it as JSON.

On failure the empty graph {"nodes":[],"edges":[]} is printed to stdout, the
reason goes to stderr and the command exits non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&provider, "provider", "", "LLM provider (zhipu, azure, openai, ollama, claude, gemini)")
	extractCmd.Flags().Float64Var(&temperature, "temperature", config.DefaultTemperature, "Sampling temperature in [0.0, 1.0]")
	extractCmd.Flags().StringVar(&apiKey, "api-key", "", "Provider API key (defaults to LLM_API_KEY)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	logger := log.NewWriter(cmd.ErrOrStderr(), log.ParseLevel(cfg.Log.Level))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	graph, genErr := newGenerator(logger).GenerateGraphData(ctx, text, cfg.LLM)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(graph); err != nil {
		return err
	}
	if genErr != nil {
		return fmt.Errorf("%s", extraction.Message(genErr))
	}
	return nil
}

// readInput returns the contents of args[0], or of in when no file is given.
func readInput(in io.Reader, args []string) (string, error) {
	var data []byte
	var err error
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(in)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errEmptyInput
	}
	return string(data), nil
}
