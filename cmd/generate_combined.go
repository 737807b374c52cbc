package main

import (
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/walksafe/seedgen/internal/dataset"
	"github.com/walksafe/seedgen/internal/export"
)

var (
	combAccidentCount   int
	combCrimeCount      int
	combAccidentProfile string
	combCrimeProfile    string
)

var generateCombinedCmd = &cobra.Command{
	Use:   "combined",
	Short: "Generate a merged accident and crime dataset",
	Long:  "Generate both domains, merge them into the wide combined schema, and sort newest first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenerateFlags(combAccidentCount); err != nil {
			return err
		}
		if err := validateGenerateFlags(combCrimeCount); err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		// Each domain gets its own assembler on a derived seed so the two
		// halves can run in parallel and still reproduce from one --seed.
		seed := resolveSeed(genSeed)
		clock := clockwork.NewRealClock()

		var (
			accidents *dataset.AccidentBatch
			crimes    *dataset.CrimeBatch
		)
		g, _ := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			asm, err := newAssembler(cfg, cat, seed, clock)
			if err != nil {
				return err
			}
			accidents, err = asm.Accidents(dataset.Request{
				Count:       combAccidentCount,
				RealPercent: genRealPercent,
				Profile:     combAccidentProfile,
			})
			return err
		})
		g.Go(func() error {
			asm, err := newAssembler(cfg, cat, seed+1, clock)
			if err != nil {
				return err
			}
			crimes, err = asm.Crimes(dataset.Request{
				Count:       combCrimeCount,
				RealPercent: genRealPercent,
				Profile:     combCrimeProfile,
			})
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		combined := dataset.Combine(accidents.Records, crimes.Records)

		// Per-domain files always get default names; --out applies to the
		// merged export only.
		if _, err := writeOutputTo(cfg, "", "accidents", func(w io.Writer) error {
			if genFormat == "xlsx" {
				return export.AccidentsXLSX(w, accidents.Records)
			}
			return export.AccidentsCSV(w, accidents.Records)
		}); err != nil {
			return err
		}
		if _, err := writeOutputTo(cfg, "", "crimes", func(w io.Writer) error {
			if genFormat == "xlsx" {
				return export.CrimesXLSX(w, crimes.Records)
			}
			return export.CrimesCSV(w, crimes.Records)
		}); err != nil {
			return err
		}

		path, err := writeOutput(cfg, "combined", func(w io.Writer) error {
			if genFormat == "xlsx" {
				return export.CombinedXLSX(w, combined)
			}
			return export.CombinedCSV(w, combined)
		})
		if err != nil {
			return err
		}

		accStats := dataset.SummarizeAccidents(accidents.Records)
		crimeStats := dataset.SummarizeCrimes(crimes.Records)
		printer.Printf("%d combined records to %s\n", len(combined), path)
		printer.Printf("  accidents %d (real %d, synthetic %d)\n", accStats.Total, accStats.Real, accStats.Synthetic)
		printer.Printf("  crimes %d (real %d, synthetic %d)\n", crimeStats.Total, crimeStats.Real, crimeStats.Synthetic)
		return nil
	},
}

func init() {
	generateCombinedCmd.Flags().IntVar(&combAccidentCount, "accident-count", 500, "number of accident records")
	generateCombinedCmd.Flags().IntVar(&combCrimeCount, "crime-count", 300, "number of crime records")
	generateCombinedCmd.Flags().StringVar(&combAccidentProfile, "accident-profile", "balanced", "accident distribution profile")
	generateCombinedCmd.Flags().StringVar(&combCrimeProfile, "crime-profile", "balanced", "crime distribution profile")
	generateCmd.AddCommand(generateCombinedCmd)
}
