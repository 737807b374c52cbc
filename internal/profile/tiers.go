// Package profile defines the risk tiers, anchor clusters, and named
// distribution profiles that shape synthetic incident generation, and the
// allocation of a record budget across tiers.
package profile

import "github.com/walksafe/seedgen/internal/geo"

// Tier names a risk bucket. Tier sets are per-domain; both domains use
// "moderate" for their middle bucket.
type Tier string

// Accident tiers, most dangerous first.
const (
	TierVeryDangerous Tier = "very-dangerous"
	TierDangerous     Tier = "dangerous"
	TierModerate      Tier = "moderate"
	TierSafe          Tier = "safe"
	TierVerySafe      Tier = "very-safe"
)

// Crime tiers, most dangerous first.
const (
	TierHighCrime         Tier = "high"
	TierModerateHighCrime Tier = "moderate-high"
	TierModerateCrime     Tier = "moderate"
	TierLowModerateCrime  Tier = "low-moderate"
	TierLowCrime          Tier = "low"
)

// Band is a half-open severity range [Min, Max).
type Band struct {
	Min float64
	Max float64
}

// Cluster is a named anchor location used as a jitter center for tier-biased
// point placement.
type Cluster struct {
	Point geo.Point
	Name  string
}

// Spec describes one risk tier: its severity band, anchor clusters, and the
// domain-specific categorical weighting applied during synthesis.
type Spec struct {
	Name     Tier
	Severity Band
	Clusters []Cluster

	// Accident correlates.
	PedestrianProb   float64
	BicycleProb      float64
	IntersectionProb float64
	RoadType         string
	SpeedLimits      []int

	// Crime correlates.
	CrimeTypes     []string
	TimeCategories []string
}

// AccidentTiers lists the accident risk tiers in fixed order. Order matters:
// allocation and synthesis iterate it so that seeded runs are reproducible.
var AccidentTiers = []Spec{
	{
		Name:     TierVeryDangerous,
		Severity: Band{Min: 0.8, Max: 1.0},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4585, Lon: -80.0772}, Name: "Atlantic Ave & Federal Hwy"},
			{Point: geo.Point{Lat: 26.4600, Lon: -80.0650}, Name: "Atlantic Ave & A1A"},
			{Point: geo.Point{Lat: 26.4520, Lon: -80.0750}, Name: "Linton Blvd corridor"},
		},
		PedestrianProb:   0.35,
		BicycleProb:      0.25,
		IntersectionProb: 0.60,
		RoadType:         "State Highway",
		SpeedLimits:      []int{45, 50, 55},
	},
	{
		Name:     TierDangerous,
		Severity: Band{Min: 0.6, Max: 0.8},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4650, Lon: -80.0728}, Name: "Congress Ave corridor"},
			{Point: geo.Point{Lat: 26.4480, Lon: -80.0800}, Name: "Military Trail"},
			{Point: geo.Point{Lat: 26.4550, Lon: -80.0680}, Name: "Commercial districts"},
		},
		PedestrianProb:   0.20,
		BicycleProb:      0.15,
		IntersectionProb: 0.30,
		RoadType:         "Arterial",
		SpeedLimits:      []int{35, 40},
	},
	{
		Name:     TierModerate,
		Severity: Band{Min: 0.4, Max: 0.6},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4615, Lon: -80.0900}, Name: "Residential west"},
			{Point: geo.Point{Lat: 26.4550, Lon: -80.0600}, Name: "Residential east"},
			{Point: geo.Point{Lat: 26.4680, Lon: -80.0750}, Name: "Mixed use areas"},
		},
		PedestrianProb:   0.10,
		BicycleProb:      0.05,
		IntersectionProb: 0.30,
		RoadType:         "City Street",
		SpeedLimits:      []int{25, 30},
	},
	{
		Name:     TierSafe,
		Severity: Band{Min: 0.2, Max: 0.4},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4580, Lon: -80.0580}, Name: "Beach residential"},
			{Point: geo.Point{Lat: 26.4730, Lon: -80.0780}, Name: "Quiet neighborhoods"},
			{Point: geo.Point{Lat: 26.4420, Lon: -80.0680}, Name: "Suburban areas"},
		},
		PedestrianProb:   0.10,
		BicycleProb:      0.05,
		IntersectionProb: 0.30,
		RoadType:         "City Street",
		SpeedLimits:      []int{25, 30},
	},
	{
		Name:     TierVerySafe,
		Severity: Band{Min: 0.0, Max: 0.2},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4750, Lon: -80.0820}, Name: "Gated communities"},
			{Point: geo.Point{Lat: 26.4450, Lon: -80.0550}, Name: "Low traffic residential"},
			{Point: geo.Point{Lat: 26.4380, Lon: -80.0650}, Name: "Quiet suburbs"},
		},
		PedestrianProb:   0.10,
		BicycleProb:      0.05,
		IntersectionProb: 0.30,
		RoadType:         "City Street",
		SpeedLimits:      []int{25, 30},
	},
}

// CrimeTiers lists the crime risk tiers in fixed order.
var CrimeTiers = []Spec{
	{
		Name:     TierHighCrime,
		Severity: Band{Min: 0.7, Max: 1.0},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4585, Lon: -80.0772}, Name: "Atlantic Ave nightlife"},
			{Point: geo.Point{Lat: 26.4520, Lon: -80.0750}, Name: "Linton Blvd commercial"},
			{Point: geo.Point{Lat: 26.4480, Lon: -80.0800}, Name: "High traffic areas"},
		},
		CrimeTypes: []string{"violent", "robbery", "assault", "theft"},
		// Night-weighted draw; "night" appears twice on purpose.
		TimeCategories: []string{"evening", "night", "night", "day"},
	},
	{
		Name:     TierModerateHighCrime,
		Severity: Band{Min: 0.5, Max: 0.7},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4650, Lon: -80.0728}, Name: "Congress Ave corridor"},
			{Point: geo.Point{Lat: 26.4480, Lon: -80.0800}, Name: "Military Trail strips"},
			{Point: geo.Point{Lat: 26.4550, Lon: -80.0680}, Name: "Commercial zones"},
		},
		CrimeTypes:     []string{"theft", "burglary", "vandalism", "assault"},
		TimeCategories: []string{"day", "evening", "afternoon", "morning"},
	},
	{
		Name:     TierModerateCrime,
		Severity: Band{Min: 0.3, Max: 0.5},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4615, Lon: -80.0900}, Name: "West residential"},
			{Point: geo.Point{Lat: 26.4550, Lon: -80.0600}, Name: "East residential"},
			{Point: geo.Point{Lat: 26.4680, Lon: -80.0750}, Name: "Mixed areas"},
		},
		CrimeTypes:     []string{"theft", "vandalism", "burglary", "other"},
		TimeCategories: []string{"day", "evening", "afternoon", "morning"},
	},
	{
		Name:     TierLowModerateCrime,
		Severity: Band{Min: 0.2, Max: 0.4},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4580, Lon: -80.0580}, Name: "Beach residential"},
			{Point: geo.Point{Lat: 26.4730, Lon: -80.0780}, Name: "Quiet neighborhoods"},
			{Point: geo.Point{Lat: 26.4420, Lon: -80.0680}, Name: "Suburban zones"},
		},
		CrimeTypes:     []string{"theft", "vandalism", "other"},
		TimeCategories: []string{"day", "evening", "afternoon", "morning"},
	},
	{
		Name:     TierLowCrime,
		Severity: Band{Min: 0.0, Max: 0.3},
		Clusters: []Cluster{
			{Point: geo.Point{Lat: 26.4750, Lon: -80.0820}, Name: "Gated communities"},
			{Point: geo.Point{Lat: 26.4420, Lon: -80.0550}, Name: "Upscale residential"},
			{Point: geo.Point{Lat: 26.4380, Lon: -80.0650}, Name: "Safe suburbs"},
		},
		CrimeTypes:     []string{"theft", "vandalism", "other"},
		TimeCategories: []string{"day", "evening", "afternoon", "morning"},
	},
}

// Tiers returns the tier specs for a domain name ("accidents" or "crimes").
func Tiers(domain string) []Spec {
	if domain == "crimes" {
		return CrimeTiers
	}
	return AccidentTiers
}
