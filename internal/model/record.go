// Package model defines the incident record types produced by the generator
// and consumed by the exporters and the HTTP API.
package model

// Domain selects which incident kind a generation run produces.
type Domain string

const (
	DomainAccidents Domain = "accidents"
	DomainCrimes    Domain = "crimes"
)

// Source tags a record's provenance. Baseline records are still simulated;
// they stand in for real historical feeds and carry no safety level.
type Source string

const (
	SourceReal      Source = "REAL"
	SourceSynthetic Source = "SYNTHETIC"
)

// CombinedType discriminates rows in the merged export.
type CombinedType string

const (
	CombinedAccident CombinedType = "ACCIDENT"
	CombinedCrime    CombinedType = "CRIME"
)

// AccidentRecord is a single traffic accident incident.
type AccidentRecord struct {
	ID                 string  `json:"id"`
	Lat                float64 `json:"lat"`
	Lon                float64 `json:"lon"`
	Date               string  `json:"date"` // 2006-01-02
	Time               string  `json:"time"` // HH:MM, 24-hour
	Severity           float64 `json:"severity"`
	PedestrianInvolved bool    `json:"pedestrianInvolved"`
	BicycleInvolved    bool    `json:"bicycleInvolved"`
	DayOfWeek          string  `json:"dayOfWeek"`
	Weather            string  `json:"weather"`
	RoadType           string  `json:"roadType"`
	SpeedLimit         int     `json:"speedLimit"`
	Intersection       bool    `json:"intersection"`
	LightCondition     string  `json:"lightCondition"`
	Address            string  `json:"address"`
	Source             Source  `json:"source"`
	SafetyLevel        string  `json:"safetyLevel,omitempty"` // tier name, empty on baseline rows
}

// CrimeRecord is a single crime incident.
type CrimeRecord struct {
	ID           string  `json:"id"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	CrimeType    string  `json:"crimeType"`
	Severity     float64 `json:"severity"`
	DayOfWeek    string  `json:"dayOfWeek"`
	TimeCategory string  `json:"timeCategory"`
	Address      string  `json:"address"`
	Source       Source  `json:"source"`
	SafetyLevel  string  `json:"safetyLevel,omitempty"`
}

// CombinedRecord is the wide-schema row shared by both kinds in the merged
// export. Fields that do not apply to a kind are left blank, so the
// accident-only columns are strings here.
type CombinedRecord struct {
	Type           CombinedType `json:"type"`
	ID             string       `json:"id"`
	Lat            float64      `json:"lat"`
	Lon            float64      `json:"lon"`
	Date           string       `json:"date"`
	Time           string       `json:"time"`
	Severity       float64      `json:"severity"`
	Description    string       `json:"description"`
	Category       string       `json:"category"`
	DayOfWeek      string       `json:"dayOfWeek"`
	Weather        string       `json:"weather"`
	RoadType       string       `json:"roadType"`
	SpeedLimit     string       `json:"speedLimit"`
	Intersection   string       `json:"intersection"` // TRUE/FALSE for accidents, blank for crimes
	LightCondition string       `json:"lightCondition"`
	Address        string       `json:"address"`
	Source         Source       `json:"source"`
}
