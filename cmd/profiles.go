package main

import (
	"github.com/spf13/cobra"

	"github.com/walksafe/seedgen/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List distribution profiles and their tier mixes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		for _, domain := range []string{"accidents", "crimes"} {
			printer.Printf("%s\n", domain)
			tiers := profile.Tiers(domain)
			for _, name := range cat.Names(domain) {
				p, err := cat.Lookup(domain, name)
				if err != nil {
					return err
				}
				printer.Printf("  %s\n", name)
				for _, tier := range tiers {
					printer.Printf("    %-16s %5.2f  severity [%.2f, %.2f)\n",
						tier.Name, p[tier.Name], tier.Severity.Min, tier.Severity.Max)
				}
			}
		}
		return nil
	},
}

func init() { rootCmd.AddCommand(profilesCmd) }
