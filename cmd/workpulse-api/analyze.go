package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/workpulse/backend/internal/benchmark"
	"github.com/workpulse/backend/internal/engine"
	"github.com/workpulse/backend/internal/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <intervals.json>",
	Short: "Compute a burnout report from an interval export",
	Long: `Run the full analytics pipeline over a JSON file of work intervals
and print the report, without talking to any backend. Useful for inspecting
exported data and for debugging metric calculations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeDate      string
	analyzeBenchmark bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "Reference date as YYYY-MM-DD (defaults to today)")
	analyzeCmd.Flags().BoolVar(&analyzeBenchmark, "benchmark", false, "Include the diff against the default benchmark grid")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read intervals file: %w", err)
	}

	var intervals []models.WorkInterval
	if err := json.Unmarshal(data, &intervals); err != nil {
		return fmt.Errorf("failed to parse intervals file: %w", err)
	}

	today := models.CivilDateOf(time.Now().UTC())
	if analyzeDate != "" {
		today, err = models.ParseCivilDate(analyzeDate)
		if err != nil {
			return err
		}
	}

	input := engine.Input{
		Intervals: intervals,
		Today:     today,
	}

	if days, known := engine.DaysSinceRest(intervals, today); known {
		input.DaysSinceRest = &days
	}

	if analyzeBenchmark {
		grid, err := benchmark.Default()
		if err != nil {
			return fmt.Errorf("failed to load benchmark grid: %w", err)
		}
		input.Benchmark = grid
	}

	report := engine.ComputeReport(input)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
