package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gotimeline/internal/extract"
	"github.com/hyperifyio/gotimeline/internal/pptx"
	"github.com/hyperifyio/gotimeline/internal/timeline"
	"github.com/hyperifyio/gotimeline/internal/validate"
)

// ErrSourceNotFound is returned when the input presentation does not exist.
// It is the one recoverable condition: the CLI reports it on stdout and
// writes nothing.
var ErrSourceNotFound = errors.New("PPT not found")

type App struct {
	cfg       Config
	extractor extract.Extractor
	log       zerolog.Logger
}

// New resolves and validates cfg.
func New(ctx context.Context, cfg Config) (*App, error) {
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	if err := ValidateConfig(resolved); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	return &App{
		cfg:       resolved,
		extractor: extract.SlideExtractor{},
		log:       log.With().Str("run_id", id).Logger(),
	}, nil
}

// Config returns the resolved configuration.
func (a *App) Config() Config { return a.cfg }

func (a *App) Close() {
	// nothing yet
}

// Run reads the presentation, classifies its text and writes the record.
// The optional PDF and XLSX exports are best-effort.
func (a *App) Run(ctx context.Context) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	in := a.cfg.InputPath
	if _, err := os.Stat(in); err != nil {
		return Summary{}, fmt.Errorf("%w at %s", ErrSourceNotFound, in)
	}

	pres, err := pptx.Open(in)
	if err != nil {
		return Summary{}, fmt.Errorf("read presentation: %w", err)
	}
	res := a.extractor.Extract(pres)
	for i, s := range res.Slides {
		a.log.Debug().Int("slide", i+1).Int("lines", len(s.Lines)).Bool("title", s.Title != nil).Msg("extracted slide")
	}

	history, events := timeline.Classify(res.Slides, res.Lines)
	rec := OutputRecord{
		PPT:            in,
		HistorySummary: history,
		Events:         events,
		Slides:         res.Slides,
	}

	data, err := marshalRecord(rec)
	if err != nil {
		return Summary{}, fmt.Errorf("encode record: %w", err)
	}
	if err := validate.ValidateRecord(data); err != nil {
		return Summary{}, err
	}
	if err := writeFileAtomic(a.cfg.OutputPath, data, 0o644); err != nil {
		return Summary{}, fmt.Errorf("write output: %w", err)
	}
	a.log.Info().Str("out", a.cfg.OutputPath).Int("slides", len(rec.Slides)).Int("events", len(rec.Events)).Msg("wrote output")

	if p := a.cfg.OutputPDFPath; p != "" {
		if err := writeTimelinePDF(rec, p); err != nil {
			a.log.Warn().Err(err).Str("out", p).Msg("pdf export failed")
		} else {
			a.log.Info().Str("out", p).Msg("wrote pdf")
		}
	}
	if p := a.cfg.OutputXLSXPath; p != "" {
		if err := writeTimelineXLSX(rec, p); err != nil {
			a.log.Warn().Err(err).Str("out", p).Msg("xlsx export failed")
		} else {
			a.log.Info().Str("out", p).Msg("wrote xlsx")
		}
	}

	return summarizeRecord(a.cfg.OutputPath, rec), nil
}
