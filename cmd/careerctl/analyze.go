package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/domain/matching"
	"career-guide/internal/infrastructure/document"
	"career-guide/internal/infrastructure/marketdata"
	"career-guide/internal/usecase"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file without starting the server",
	Long:  "Extracts skills from a .txt, .pdf or .docx resume with keyword matching and prints gaps, a learning pathway and the top career matches as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeFile       string
	analyzeMarketData string
	analyzeSeed       uint64
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to the resume file (required)")
	analyzeCmd.Flags().StringVar(&analyzeMarketData, "market-data", envOr("MARKET_DATA_PATH", "job_market_data.json"), "Path to the market data JSON file")
	analyzeCmd.Flags().Uint64Var(&analyzeSeed, "seed", 0, "Seed for pathway resource selection (0 picks randomly)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Log pipeline steps to stderr")

	if err := analyzeCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	logger := log.New(io.Discard, "", 0)
	if analyzeVerbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume %s: %w", analyzeFile, err)
	}

	ct := document.DetectType(filepath.Base(analyzeFile), "")
	text, err := document.ExtractText(ct, data)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", analyzeFile, err)
	}

	cat, err := marketdata.NewJSONSource(analyzeMarketData, logger).Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load market data: %w", err)
	}

	analysis := usecase.NewAnalysisUsecase(cat, nil, chooserFor(analyzeSeed), nil, nil, logger)
	rec, err := analysis.Evaluate(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	out, err := json.MarshalIndent(dto.NewAnalysisResponse(usecase.AnalysisResult{
		Student:    rec,
		TopMatches: matching.TopMatches(rec.CareerMatches, 3),
	}), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func chooserFor(seed uint64) matching.Chooser {
	if seed == 0 {
		return matching.RandomChooser{}
	}
	r := rand.New(rand.NewPCG(seed, seed))
	return matching.ChooserFunc(func(n int) int {
		if n <= 0 {
			return 0
		}
		return r.IntN(n)
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
