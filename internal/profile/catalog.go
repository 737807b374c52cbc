package profile

import (
	"math"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Profile maps each tier to its proportion of the synthetic record budget.
type Profile map[Tier]float64

// Catalog holds the named distribution profiles per domain. The built-in
// presets can be extended or overridden from a YAML file.
type Catalog struct {
	profiles map[string]map[string]Profile // domain -> name -> profile
}

// DefaultCatalog returns the built-in presets.
func DefaultCatalog() *Catalog {
	return &Catalog{
		profiles: map[string]map[string]Profile{
			"accidents": {
				"balanced": {
					TierVeryDangerous: 0.20, TierDangerous: 0.25, TierModerate: 0.30,
					TierSafe: 0.15, TierVerySafe: 0.10,
				},
				"safe-heavy": {
					TierVeryDangerous: 0.10, TierDangerous: 0.15, TierModerate: 0.25,
					TierSafe: 0.30, TierVerySafe: 0.20,
				},
				"danger-heavy": {
					TierVeryDangerous: 0.30, TierDangerous: 0.30, TierModerate: 0.25,
					TierSafe: 0.10, TierVerySafe: 0.05,
				},
			},
			"crimes": {
				"balanced": {
					TierHighCrime: 0.25, TierModerateHighCrime: 0.25, TierModerateCrime: 0.25,
					TierLowModerateCrime: 0.15, TierLowCrime: 0.10,
				},
				"low-crime": {
					TierHighCrime: 0.10, TierModerateHighCrime: 0.15, TierModerateCrime: 0.25,
					TierLowModerateCrime: 0.30, TierLowCrime: 0.20,
				},
				"high-crime": {
					TierHighCrime: 0.35, TierModerateHighCrime: 0.30, TierModerateCrime: 0.20,
					TierLowModerateCrime: 0.10, TierLowCrime: 0.05,
				},
			},
		},
	}
}

// Lookup resolves a profile by domain and name. Unknown names fail fast with
// the valid names in the message.
func (c *Catalog) Lookup(domain, name string) (Profile, error) {
	domainProfiles, ok := c.profiles[domain]
	if !ok {
		return nil, eris.Errorf("profile: unknown domain %q", domain)
	}
	p, ok := domainProfiles[name]
	if !ok {
		return nil, eris.Errorf("profile: unknown %s profile %q (valid: %s)",
			domain, name, strings.Join(c.Names(domain), ", "))
	}
	return p, nil
}

// Names returns the sorted profile names for a domain.
func (c *Catalog) Names(domain string) []string {
	names := make([]string, 0, len(c.profiles[domain]))
	for name := range c.profiles[domain] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// overrideFile is the YAML shape for custom profiles:
//
//	profiles:
//	  accidents:
//	    weekend-surge:
//	      very-dangerous: 0.4
//	      ...
type overrideFile struct {
	Profiles map[string]map[string]map[string]float64 `yaml:"profiles"`
}

// LoadFile merges profile overrides from a YAML file into the catalog.
// Overrides may add new names or replace presets. Missing tiers allocate
// zero; proportions must be non-negative and sum to at most 1.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "profile: read overrides %s", path)
	}

	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return eris.Wrap(err, "profile: parse overrides")
	}

	for domain, byName := range f.Profiles {
		if _, ok := c.profiles[domain]; !ok {
			return eris.Errorf("profile: overrides reference unknown domain %q", domain)
		}
		valid := make(map[Tier]bool, len(Tiers(domain)))
		for _, spec := range Tiers(domain) {
			valid[spec.Name] = true
		}

		for name, proportions := range byName {
			p := make(Profile, len(proportions))
			var sum float64
			for tier, v := range proportions {
				if !valid[Tier(tier)] {
					return eris.Errorf("profile: %s profile %q references unknown tier %q", domain, name, tier)
				}
				if v < 0 {
					return eris.Errorf("profile: %s profile %q has negative proportion for %q", domain, name, tier)
				}
				p[Tier(tier)] = v
				sum += v
			}
			if sum > 1+1e-9 {
				return eris.Errorf("profile: %s profile %q proportions sum to %.3f (> 1)", domain, name, sum)
			}
			c.profiles[domain][name] = p
		}
	}

	return nil
}

// Allocate splits totalCount across tiers by flooring each tier's share.
// The floor can leave the sum short of totalCount; that loss is intentional
// and is not redistributed, matching the reference behavior.
func Allocate(totalCount int, tiers []Spec, p Profile) map[Tier]int {
	counts := make(map[Tier]int, len(tiers))
	for _, spec := range tiers {
		counts[spec.Name] = int(math.Floor(float64(totalCount) * p[spec.Name]))
	}
	return counts
}
