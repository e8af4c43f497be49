package extract

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/inkwell-data/policyscan/internal/model"
)

// Engine runs the extraction pipeline: anchor → window → filter → score →
// resolve → reconcile → classify. An Engine is immutable after construction
// and safe for concurrent use; processing one document shares no state with
// any other.
type Engine struct {
	reg *model.FieldRegistry
	cfg Config
}

// New constructs an Engine. Configuration problems are construction errors,
// not runtime warnings.
func New(reg *model.FieldRegistry, cfg Config) (*Engine, error) {
	if reg == nil || len(reg.Fields) == 0 {
		return nil, eris.New("extract: engine requires a non-empty field registry")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{reg: reg, cfg: cfg}, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Registry returns the engine's field registry.
func (e *Engine) Registry() *model.FieldRegistry { return e.reg }

// Extract runs the full pipeline over one document. Data-quality problems
// surface as warnings inside the result; only a structurally invalid input
// (no text and no tables) is an error.
func (e *Engine) Extract(doc model.Document) (*model.ExtractionResult, error) {
	if strings.TrimSpace(doc.Text) == "" && len(doc.Tables) == 0 {
		return nil, eris.Errorf("extract: document %q has no text and no tables", doc.Filename)
	}

	anchors := Anchors(doc, e.reg)
	candidates := ResolveWindows(doc, anchors, e.reg, e.cfg)

	tables := LabelTables(doc.Tables)
	candidates = append(candidates, TableCandidates(doc, tables, e.reg)...)

	candidates = Filter(candidates, e.reg)
	scored := ScoreAll(candidates, e.reg, e.cfg)

	fields, warnings := ResolveFields(scored, e.reg)
	fields, reconcileWarnings := Reconcile(fields, e.cfg)
	warnings = append(warnings, reconcileWarnings...)

	zap.L().Debug("extract: pipeline complete",
		zap.String("filename", doc.Filename),
		zap.Int("anchors", len(anchors)),
		zap.Int("candidates", len(candidates)),
		zap.Int("warnings", len(warnings)),
	)

	if warnings == nil {
		warnings = []string{}
	}
	return &model.ExtractionResult{
		DocumentMetadata: model.DocumentMetadata{
			Filename:     doc.Filename,
			Pages:        doc.PageCount(),
			DocumentType: ClassifyDocument(fields),
		},
		Fields:          fields,
		TablesExtracted: tables,
		Warnings:        warnings,
	}, nil
}
