// Package synth produces individual incident records. Placement is either
// uniform over the coverage disk (baseline path) or jittered around a tier's
// anchor clusters with an in-disk fallback (tier-biased path).
//
// Randomness and time are injected so seeded runs are exactly reproducible.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jonboulle/clockwork"

	"github.com/walksafe/seedgen/internal/geo"
	"github.com/walksafe/seedgen/internal/profile"
)

// Defaults for cluster jitter, matching the reference generator.
const (
	DefaultJitterSpread = 0.008 // total uniform spread per axis, degrees (±0.004)
	DefaultMaxAttempts  = 10
)

var (
	daysOfWeek      = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	weathers        = []string{"Clear", "Cloudy", "Rain", "Fog"}
	roadTypes       = []string{"City Street", "State Highway", "Residential", "Arterial"}
	speedLimits     = []int{25, 30, 35, 40, 45, 50}
	lightConditions = []string{"Daylight", "Dark", "Dawn", "Dusk"}
	crimeTypes      = []string{"theft", "burglary", "assault", "vandalism", "robbery", "other"}
	timeCategories  = []string{"morning", "afternoon", "evening", "night"}
	streets         = []string{
		"Atlantic Ave", "Federal Hwy", "Congress Ave", "Military Trl", "Jog Rd",
		"Linton Blvd", "Germantown Rd", "Yamato Rd", "Spanish River Blvd",
	}
)

// Config holds the synthesis parameters shared by every record.
type Config struct {
	Area         geo.CoverageArea
	JitterSpread float64
	MaxAttempts  int
}

// Synthesizer generates incident records from an injected random source and
// clock. It is not safe for concurrent use; give each goroutine its own.
type Synthesizer struct {
	rng   *rand.Rand
	clock clockwork.Clock
	cfg   Config
}

// New builds a Synthesizer. Zero jitter parameters take the defaults.
func New(rng *rand.Rand, clock clockwork.Clock, cfg Config) *Synthesizer {
	if cfg.JitterSpread <= 0 {
		cfg.JitterSpread = DefaultJitterSpread
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	return &Synthesizer{rng: rng, clock: clock, cfg: cfg}
}

// placeNear jitters around a tier anchor cluster until the point lands in
// the coverage disk, falling back to a uniform in-disk draw.
func (s *Synthesizer) placeNear(clusters []profile.Cluster) geo.Point {
	anchor := pick(s.rng, clusters)
	for i := 0; i < s.cfg.MaxAttempts; i++ {
		p := geo.Point{
			Lat: geo.Round6(anchor.Point.Lat + (s.rng.Float64()-0.5)*s.cfg.JitterSpread),
			Lon: geo.Round6(anchor.Point.Lon + (s.rng.Float64()-0.5)*s.cfg.JitterSpread),
		}
		if s.cfg.Area.Contains(p) {
			return p
		}
	}
	return geo.RandomPointInDisk(s.rng, s.cfg.Area)
}

// recentDate returns a date uniformly within the past 365 days of the clock.
func (s *Synthesizer) recentDate() string {
	daysBack := s.rng.Intn(365)
	return s.clock.Now().AddDate(0, 0, -daysBack).Format("2006-01-02")
}

func (s *Synthesizer) timeOfDay() string {
	return fmt.Sprintf("%02d:%02d", s.rng.Intn(24), s.rng.Intn(60))
}

func (s *Synthesizer) address() string {
	return fmt.Sprintf("%d %s", s.rng.Intn(9999)+1, pick(s.rng, streets))
}

// severityIn draws a severity from [band.Min, band.Max), truncated to two
// decimals. Truncation (not rounding) keeps the value strictly below Max.
func (s *Synthesizer) severityIn(band profile.Band) float64 {
	v := band.Min + s.rng.Float64()*(band.Max-band.Min)
	return math.Floor(v*100) / 100
}

// recordID stamps a batch-unique id. The loop index keeps ids distinct even
// when the millisecond timestamp collides across iterations.
func (s *Synthesizer) recordID(prefix string, tier profile.Tier, index int) string {
	ms := s.clock.Now().UnixMilli()
	if tier == "" {
		return fmt.Sprintf("%s_%d_%d", prefix, ms, index)
	}
	return fmt.Sprintf("%s_%d_%s_%d", prefix, ms, tier, index)
}

func (s *Synthesizer) chance(p float64) bool {
	return s.rng.Float64() < p
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
