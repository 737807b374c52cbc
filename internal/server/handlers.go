package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/walksafe/seedgen/internal/dataset"
	"github.com/walksafe/seedgen/internal/export"
	"github.com/walksafe/seedgen/internal/model"
	"github.com/walksafe/seedgen/internal/profile"
	"github.com/walksafe/seedgen/internal/synth"
)

// datasetRequest is the body of the single-domain generation endpoints.
type datasetRequest struct {
	Count       int    `json:"count"`
	RealPercent int    `json:"real_percent"`
	Profile     string `json:"profile"`
	Format      string `json:"format"`
	Seed        int64  `json:"seed"`
}

// combinedRequest is the body of the combined generation endpoint.
type combinedRequest struct {
	AccidentCount   int    `json:"accident_count"`
	CrimeCount      int    `json:"crime_count"`
	RealPercent     int    `json:"real_percent"`
	AccidentProfile string `json:"accident_profile"`
	CrimeProfile    string `json:"crime_profile"`
	Format          string `json:"format"`
	Seed            int64  `json:"seed"`
}

func (s *Server) validateParams(count, realPercent int, format string) error {
	if count <= 0 {
		return fmt.Errorf("count %d must be positive", count)
	}
	if count > s.cfg.Server.MaxCount {
		return fmt.Errorf("count %d exceeds maximum %d", count, s.cfg.Server.MaxCount)
	}
	if realPercent < 0 || realPercent > 100 {
		return fmt.Errorf("real_percent %d outside [0,100]", realPercent)
	}
	if format != "" && format != "json" && format != "csv" {
		return fmt.Errorf("format %q must be json or csv", format)
	}
	return nil
}

// newAssembler builds a per-request assembler. Each request gets its own
// random source because Assembler is not safe for concurrent use.
func (s *Server) newAssembler(seed int64) *dataset.Assembler {
	if seed == 0 {
		seed = s.clock.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	cfg := synth.Config{
		Area:         s.area,
		JitterSpread: s.cfg.Generate.JitterSpread,
		MaxAttempts:  s.cfg.Generate.MaxJitterAttempts,
	}
	return dataset.New(rng, s.clock, cfg, s.catalog)
}

func (s *Server) handleProfiles(w http.ResponseWriter, _ *http.Request) {
	type tierInfo struct {
		Name        string  `json:"name"`
		SeverityMin float64 `json:"severity_min"`
		SeverityMax float64 `json:"severity_max"`
	}
	type domainInfo struct {
		Profiles []string   `json:"profiles"`
		Tiers    []tierInfo `json:"tiers"`
	}

	out := make(map[string]domainInfo, 2)
	for _, domain := range []string{"accidents", "crimes"} {
		info := domainInfo{Profiles: s.catalog.Names(domain)}
		for _, tier := range profile.Tiers(domain) {
			info.Tiers = append(info.Tiers, tierInfo{
				Name:        string(tier.Name),
				SeverityMin: tier.Severity.Min,
				SeverityMax: tier.Severity.Max,
			})
		}
		out[domain] = info
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleAccidents(w http.ResponseWriter, r *http.Request) {
	var req datasetRequest
	if err := decodeBody(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Profile == "" {
		req.Profile = "balanced"
	}
	if err := s.validateParams(req.Count, req.RealPercent, req.Format); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	batch, err := s.newAssembler(req.Seed).Accidents(dataset.Request{
		Count:       req.Count,
		RealPercent: req.RealPercent,
		Profile:     req.Profile,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	zap.L().Info("generated accident batch",
		zap.String("batch_id", batch.ID),
		zap.Int("records", len(batch.Records)))

	if req.Format == "csv" {
		s.respondCSV(w, "accidents", func(buf io.Writer) error {
			return export.AccidentsCSV(buf, batch.Records)
		})
		return
	}
	respondJSON(w, http.StatusOK, struct {
		BatchID string                 `json:"batch_id"`
		Stats   dataset.AccidentStats  `json:"stats"`
		Records []model.AccidentRecord `json:"records"`
	}{batch.ID, dataset.SummarizeAccidents(batch.Records), batch.Records})
}

func (s *Server) handleCrimes(w http.ResponseWriter, r *http.Request) {
	var req datasetRequest
	if err := decodeBody(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Profile == "" {
		req.Profile = "balanced"
	}
	if err := s.validateParams(req.Count, req.RealPercent, req.Format); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	batch, err := s.newAssembler(req.Seed).Crimes(dataset.Request{
		Count:       req.Count,
		RealPercent: req.RealPercent,
		Profile:     req.Profile,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	zap.L().Info("generated crime batch",
		zap.String("batch_id", batch.ID),
		zap.Int("records", len(batch.Records)))

	if req.Format == "csv" {
		s.respondCSV(w, "crimes", func(buf io.Writer) error {
			return export.CrimesCSV(buf, batch.Records)
		})
		return
	}
	respondJSON(w, http.StatusOK, struct {
		BatchID string              `json:"batch_id"`
		Stats   dataset.CrimeStats  `json:"stats"`
		Records []model.CrimeRecord `json:"records"`
	}{batch.ID, dataset.SummarizeCrimes(batch.Records), batch.Records})
}

func (s *Server) handleCombined(w http.ResponseWriter, r *http.Request) {
	var req combinedRequest
	if err := decodeBody(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.AccidentProfile == "" {
		req.AccidentProfile = "balanced"
	}
	if req.CrimeProfile == "" {
		req.CrimeProfile = "balanced"
	}
	if err := s.validateParams(req.AccidentCount, req.RealPercent, req.Format); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validateParams(req.CrimeCount, req.RealPercent, req.Format); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = s.clock.Now().UnixNano()
	}

	// The two domains run in parallel on derived seeds so a seeded request
	// still reproduces both halves.
	var (
		accidents *dataset.AccidentBatch
		crimes    *dataset.CrimeBatch
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		accidents, err = s.newAssembler(seed).Accidents(dataset.Request{
			Count:       req.AccidentCount,
			RealPercent: req.RealPercent,
			Profile:     req.AccidentProfile,
		})
		return err
	})
	g.Go(func() error {
		var err error
		crimes, err = s.newAssembler(seed + 1).Crimes(dataset.Request{
			Count:       req.CrimeCount,
			RealPercent: req.RealPercent,
			Profile:     req.CrimeProfile,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	combined := dataset.Combine(accidents.Records, crimes.Records)

	zap.L().Info("generated combined batch",
		zap.String("accident_batch_id", accidents.ID),
		zap.String("crime_batch_id", crimes.ID),
		zap.Int("records", len(combined)))

	if req.Format == "csv" {
		s.respondCSV(w, "combined", func(buf io.Writer) error {
			return export.CombinedCSV(buf, combined)
		})
		return
	}
	respondJSON(w, http.StatusOK, struct {
		AccidentBatchID string                 `json:"accident_batch_id"`
		CrimeBatchID    string                 `json:"crime_batch_id"`
		AccidentStats   dataset.AccidentStats  `json:"accident_stats"`
		CrimeStats      dataset.CrimeStats     `json:"crime_stats"`
		Records         []model.CombinedRecord `json:"records"`
	}{accidents.ID, crimes.ID,
		dataset.SummarizeAccidents(accidents.Records),
		dataset.SummarizeCrimes(crimes.Records),
		combined})
}

// respondCSV writes the export as a downloadable attachment.
func (s *Server) respondCSV(w http.ResponseWriter, kind string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	name := export.Filename(s.area.Name, kind, "csv", s.clock.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := buf.WriteTo(w); err != nil {
		zap.L().Error("write csv response", zap.Error(err))
	}
}

func decodeBody(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
