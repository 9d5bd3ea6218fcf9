package main

import (
	"fmt"
	"os"

	"claims-analyzer/config"
	"claims-analyzer/services"
	"claims-analyzer/storage"
	"claims-analyzer/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetDebug(cfg.Debug)

	logger.Info("=== Insurance Claims Analyzer starting ===")
	logger.Info("Config — input: %s | export cleaned: %v | output: %s",
		cfg.InputPath, cfg.ExportCleaned, cfg.OutputPath)

	cleaner := services.NewCleaner(logger)
	claims, err := cleaner.CleanFile(cfg.InputPath)
	if err != nil {
		logger.Error("Failed to read claims data: %v", err)
		os.Exit(1)
	}

	if len(claims) == 0 {
		logger.Error("No admissible claims found in %s. Exiting.", cfg.InputPath)
		os.Exit(1)
	}

	logger.Info("Cleaned dataset: %d claims", len(claims))

	classifier := services.NewClassifier(logger)
	classifier.Annotate(claims)

	if cfg.ExportCleaned {
		writer, err := storage.NewCSVWriter(cfg.OutputPath)
		if err != nil {
			logger.Error("Failed to create CSV writer: %v", err)
			os.Exit(1)
		}
		if err := writer.Write(claims); err != nil {
			logger.Error("CSV export failed: %v", err)
		} else {
			logger.Info("Cleaned claims saved to %s", cfg.OutputPath)
		}
		if err := writer.Close(); err != nil {
			logger.Warn("CSV writer close failed: %v", err)
		}
	}

	analyzer := services.NewAnalyzer(logger)
	result := analyzer.Analyze(claims)
	analyzer.Print(result)

	fmt.Printf("  Done. Recommendation → close operations in %s\n\n", result.RecommendedCity)
}
