// Package evaluate runs one evaluation session: language gate, parsing,
// validation, scoring and ranking of a single input payload.
//
// A session owns its supplier collection. In strict mode the first invalid
// record aborts the session and no result is produced. Tolerant mode skips
// invalid records and lists them in the result instead.
package evaluate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dotcommander/vendorsel/internal/parser"
	"github.com/dotcommander/vendorsel/internal/ranking"
	"github.com/dotcommander/vendorsel/internal/scoring"
	"github.com/dotcommander/vendorsel/internal/types"
	"github.com/dotcommander/vendorsel/internal/validate"
	"go.uber.org/zap"
)

// Options configures a session.
type Options struct {
	Format string // input format tag: csv or json
	Mode   string // strict (default) or tolerant
	Source string // display name of the input, e.g. a file path
	Logger *zap.Logger
}

// Rejection describes a record skipped in tolerant mode.
type Rejection struct {
	Index      int    `json:"index" yaml:"index"` // zero-based record position
	SupplierID string `json:"supplier_id,omitempty" yaml:"supplier_id,omitempty"`
	Kind       string `json:"kind" yaml:"kind"`
	Message    string `json:"message" yaml:"message"`
	Err        error  `json:"-" yaml:"-"`
}

// FieldStatus is one line of the validation summary.
type FieldStatus struct {
	Field  string `json:"field" yaml:"field"`
	Status string `json:"status" yaml:"status"`
}

// Metadata is the session's running validation record.
type Metadata struct {
	Source          string        `json:"source,omitempty" yaml:"source,omitempty"`
	Format          string        `json:"format" yaml:"format"`
	Mode            string        `json:"mode" yaml:"mode"`
	SupplierCount   int           `json:"supplier_count" yaml:"supplier_count"`
	FieldsPerRecord int           `json:"fields_per_record" yaml:"fields_per_record"`
	RequiredFields  []FieldStatus `json:"required_fields" yaml:"required_fields"`
	DataTypes       []FieldStatus `json:"data_types" yaml:"data_types"`
	Rejected        []Rejection   `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	DuplicateIDs    []string      `json:"duplicate_ids,omitempty" yaml:"duplicate_ids,omitempty"`
}

// Result is everything the report generators consume. Scores are final;
// renderers must not recompute them.
type Result struct {
	Metadata   Metadata           `json:"metadata" yaml:"metadata"`
	Weights    scoring.Weights    `json:"-" yaml:"-"`
	Suppliers  []scoring.Supplier `json:"suppliers" yaml:"suppliers"` // arrival order
	Ranked     []ranking.Ranked   `json:"ranked" yaml:"ranked"`
	TopScore   float64            `json:"top_score" yaml:"top_score"`
	TopVendors []scoring.Supplier `json:"top_vendors" yaml:"top_vendors"`
	Policy     string             `json:"policy" yaml:"policy"`
}

// Evaluate runs a fresh session over text.
func Evaluate(text string, opts Options) (*Result, error) {
	return NewSession(opts).Run(text)
}

// Session accumulates suppliers for one input payload.
type Session struct {
	opts      Options
	log       *zap.Logger
	suppliers []scoring.Supplier
	rejected  []validate.Result
	seen      map[string]int
}

// NewSession creates a session. A nil logger discards output.
func NewSession(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Mode == "" {
		opts.Mode = types.ModeStrict
	}
	return &Session{
		opts: opts,
		log:  log.Named("evaluate"),
		seen: make(map[string]int),
	}
}

// Run evaluates text. It must be called at most once per session.
func (s *Session) Run(text string) (*Result, error) {
	if s.opts.Mode != types.ModeStrict && s.opts.Mode != types.ModeTolerant {
		return nil, fmt.Errorf("invalid mode: %s. Must be '%s' or '%s'", s.opts.Mode, types.ModeStrict, types.ModeTolerant)
	}

	if err := validate.CheckLanguage(text); err != nil {
		return nil, err
	}

	records, err := parser.Parse(text, s.opts.Format)
	if err != nil {
		return nil, err
	}

	index := 0
	for rec, err := range records {
		if err != nil {
			return nil, err
		}
		if err := s.add(validate.Check(index, rec)); err != nil {
			return nil, err
		}
		index++
	}

	s.log.Debug("session complete",
		zap.String("source", s.opts.Source),
		zap.Int("records", index),
		zap.Int("accepted", len(s.suppliers)),
		zap.Int("rejected", len(s.rejected)))

	return s.result(), nil
}

// add appends a validated supplier, or handles the failure according to mode.
func (s *Session) add(res validate.Result) error {
	if !res.OK() {
		if s.opts.Mode == types.ModeStrict {
			return res.Err
		}
		s.log.Warn("record rejected",
			zap.Int("index", res.Index),
			zap.String("supplier_id", res.SupplierID()),
			zap.Error(res.Err))
		s.rejected = append(s.rejected, res)
		return nil
	}

	// Duplicate ids are allowed as-is.
	id := res.Supplier.ID
	s.seen[id]++
	if s.seen[id] == 2 {
		s.log.Debug("duplicate supplier_id", zap.String("supplier_id", id))
	}

	s.log.Debug("record accepted",
		zap.Int("index", res.Index),
		zap.String("supplier_id", id),
		zap.Float64("overall_score", res.Supplier.OverallScore))
	s.suppliers = append(s.suppliers, res.Supplier)
	return nil
}

func (s *Session) result() *Result {
	weights := scoring.DefaultWeights()
	suppliers := s.suppliers
	if suppliers == nil {
		suppliers = []scoring.Supplier{}
	}
	top := ranking.TopCohort.Select(suppliers)
	if top == nil {
		top = []scoring.Supplier{}
	}
	return &Result{
		Metadata:   s.metadata(weights),
		Weights:    weights,
		Suppliers:  suppliers,
		Ranked:     ranking.Rank(suppliers),
		TopScore:   ranking.TopScore(suppliers),
		TopVendors: top,
		Policy:     ranking.TopCohort.Name(),
	}
}

func (s *Session) metadata(weights scoring.Weights) Metadata {
	md := Metadata{
		Source:          s.opts.Source,
		Format:          s.opts.Format,
		Mode:            s.opts.Mode,
		SupplierCount:   len(s.suppliers),
		FieldsPerRecord: len(types.RequiredFields),
	}

	missing := make(map[string]int)
	invalidType := make(map[string]int)
	outOfRange := make(map[string]int)
	for _, r := range s.rejected {
		var me *types.MissingFieldError
		var te *types.InvalidTypeError
		var re *types.InvalidRangeError
		switch {
		case errors.As(r.Err, &me):
			for _, f := range me.Fields {
				missing[f]++
			}
		case errors.As(r.Err, &te):
			invalidType[te.Field]++
		case errors.As(r.Err, &re):
			outOfRange[re.Field]++
		}
		md.Rejected = append(md.Rejected, Rejection{
			Index:      r.Index,
			SupplierID: r.SupplierID(),
			Kind:       types.KindOf(r.Err),
			Message:    r.Err.Error(),
			Err:        r.Err,
		})
	}

	for _, field := range types.RequiredFields {
		status := "Present"
		if n := missing[field]; n > 0 {
			status = fmt.Sprintf("Missing in %d record(s)", n)
		}
		md.RequiredFields = append(md.RequiredFields, FieldStatus{Field: field, Status: status})
	}

	for _, fw := range weights {
		status := "Valid"
		switch t, r := invalidType[fw.Field], outOfRange[fw.Field]; {
		case t > 0 && r > 0:
			status = fmt.Sprintf("Invalid in %d record(s); out of range in %d record(s)", t, r)
		case t > 0:
			status = fmt.Sprintf("Invalid in %d record(s)", t)
		case r > 0:
			status = fmt.Sprintf("Out of range in %d record(s)", r)
		}
		md.DataTypes = append(md.DataTypes, FieldStatus{Field: fw.Label, Status: status})
	}

	for id, n := range s.seen {
		if n > 1 {
			md.DuplicateIDs = append(md.DuplicateIDs, id)
		}
	}
	sort.Strings(md.DuplicateIDs)

	return md
}
