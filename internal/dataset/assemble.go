// Package dataset assembles generation batches: it splits the requested
// count into a baseline and a tier-shaped synthetic portion, shuffles the
// result, and merges both domains into the combined export schema.
package dataset

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"

	"github.com/walksafe/seedgen/internal/model"
	"github.com/walksafe/seedgen/internal/profile"
	"github.com/walksafe/seedgen/internal/synth"
)

// Request describes one generation batch.
type Request struct {
	Count       int
	RealPercent int
	Profile     string
}

// Validate rejects impossible parameters. Count 0 is legal here and yields
// an empty batch; the CLI and HTTP layers reject non-positive counts before
// building a Request.
func (r Request) Validate() error {
	if r.Count < 0 {
		return eris.Errorf("dataset: count %d must not be negative", r.Count)
	}
	if r.RealPercent < 0 || r.RealPercent > 100 {
		return eris.Errorf("dataset: real percent %d outside [0,100]", r.RealPercent)
	}
	return nil
}

// Assembler generates shuffled batches for one domain pair. It owns the
// random source for the run and is not safe for concurrent use.
type Assembler struct {
	rng     *rand.Rand
	synth   *synth.Synthesizer
	catalog *profile.Catalog
}

// New builds an Assembler sharing one random source between placement,
// synthesis, and the final shuffle so a seed reproduces the whole batch.
func New(rng *rand.Rand, clock clockwork.Clock, cfg synth.Config, catalog *profile.Catalog) *Assembler {
	return &Assembler{
		rng:     rng,
		synth:   synth.New(rng, clock, cfg),
		catalog: catalog,
	}
}

// AccidentBatch is the result of one accident generation run.
type AccidentBatch struct {
	ID      string                 `json:"batch_id"`
	Records []model.AccidentRecord `json:"records"`
}

// CrimeBatch is the result of one crime generation run.
type CrimeBatch struct {
	ID      string              `json:"batch_id"`
	Records []model.CrimeRecord `json:"records"`
}

// Accidents generates an accident batch. realCount = floor(count*percent/100)
// baseline records plus a tier-allocated synthetic remainder; the batch can
// undershoot the requested count by the tier allocation's truncation loss.
func (a *Assembler) Accidents(req Request) (*AccidentBatch, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := a.catalog.Lookup("accidents", req.Profile)
	if err != nil {
		return nil, err
	}

	realCount := req.Count * req.RealPercent / 100
	records := a.synth.BaselineAccidents(realCount)

	counts := profile.Allocate(req.Count-realCount, profile.AccidentTiers, p)
	for _, tier := range profile.AccidentTiers {
		records = append(records, a.synth.Accidents(tier, counts[tier.Name])...)
	}

	a.rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	return &AccidentBatch{ID: uuid.NewString(), Records: records}, nil
}

// Crimes generates a crime batch with the same split and shuffle as Accidents.
func (a *Assembler) Crimes(req Request) (*CrimeBatch, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := a.catalog.Lookup("crimes", req.Profile)
	if err != nil {
		return nil, err
	}

	realCount := req.Count * req.RealPercent / 100
	records := a.synth.BaselineCrimes(realCount)

	counts := profile.Allocate(req.Count-realCount, profile.CrimeTiers, p)
	for _, tier := range profile.CrimeTiers {
		records = append(records, a.synth.Crimes(tier, counts[tier.Name])...)
	}

	a.rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	return &CrimeBatch{ID: uuid.NewString(), Records: records}, nil
}
