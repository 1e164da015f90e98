package main

import (
	"fmt"
	"os"

	"github.com/rankworks/criterium/internal/report"
	"github.com/rankworks/criterium/internal/tabular"
	"github.com/rankworks/criterium/internal/topsis"
)

const usage = "Usage: topsis <InputDataFile> <Weights> <Impacts> <OutputResultFileName>\n" +
	"Example: topsis data.csv \"1,1,1,2\" \"+,+,-,+\" result.csv"

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	inputPath, weightArg, impactArg, outputPath := os.Args[1], os.Args[2], os.Args[3], os.Args[4]

	if err := run(inputPath, weightArg, impactArg, outputPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(inputPath, weightArg, impactArg, outputPath string) error {
	format, err := tabular.DetectFormat(inputPath)
	if err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := tabular.Decode(f, format)
	if err != nil {
		return err
	}

	weights, err := tabular.ParseWeights(weightArg)
	if err != nil {
		return err
	}
	impacts, err := tabular.ParseImpacts(impactArg)
	if err != nil {
		return err
	}

	result, err := topsis.Rank(table, weights, impacts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(report.RenderCSV(result)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	fmt.Printf("TOPSIS results written to %s\n\n", outputPath)
	fmt.Print(report.RenderTable(result))
	return nil
}
