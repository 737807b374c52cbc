package main

import (
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/walksafe/seedgen/internal/dataset"
	"github.com/walksafe/seedgen/internal/export"
)

var (
	crimeCount   int
	crimeProfile string
)

var generateCrimesCmd = &cobra.Command{
	Use:   "crimes",
	Short: "Generate a crime dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenerateFlags(crimeCount); err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		asm, err := newAssembler(cfg, cat, resolveSeed(genSeed), clockwork.NewRealClock())
		if err != nil {
			return err
		}

		batch, err := asm.Crimes(dataset.Request{
			Count:       crimeCount,
			RealPercent: genRealPercent,
			Profile:     crimeProfile,
		})
		if err != nil {
			return err
		}

		path, err := writeOutput(cfg, "crimes", func(w io.Writer) error {
			if genFormat == "xlsx" {
				return export.CrimesXLSX(w, batch.Records)
			}
			return export.CrimesCSV(w, batch.Records)
		})
		if err != nil {
			return err
		}

		stats := dataset.SummarizeCrimes(batch.Records)
		printer.Printf("batch %s: %d crimes to %s\n", batch.ID, stats.Total, path)
		printer.Printf("  real %d, synthetic %d\n", stats.Real, stats.Synthetic)
		printer.Printf("  violent %d, property %d, night %d\n", stats.Violent, stats.Property, stats.Night)
		return nil
	},
}

func init() {
	generateCrimesCmd.Flags().IntVar(&crimeCount, "count", 300, "number of records to generate")
	generateCrimesCmd.Flags().StringVar(&crimeProfile, "profile", "balanced", "distribution profile")
	generateCmd.AddCommand(generateCrimesCmd)
}
