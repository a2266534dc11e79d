// Package demo walks through notes, chords, scales and an instrument,
// printing each rendering as it goes.
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Conceptual-Machines/magda-music-go/elements"
	"github.com/Conceptual-Machines/magda-music-go/logger"
	"github.com/Conceptual-Machines/magda-music-go/metrics"
)

// Runner executes the demo, writing renderings to out
type Runner struct {
	out     io.Writer
	lggr    logger.Logger
	metrics *metrics.SentryMetrics
}

// NewRunner creates a demo runner
func NewRunner(out io.Writer, lggr logger.Logger, m *metrics.SentryMetrics) *Runner {
	return &Runner{
		out:     out,
		lggr:    lggr.Named("demo"),
		metrics: m,
	}
}

// Run executes every step in order and stops at the first error
func (r *Runner) Run(ctx context.Context) error {
	ctx, finish := r.metrics.StartRun(ctx, "musicapp.demo")
	defer finish()

	var (
		note   *elements.Note
		chord  *elements.Chord
		cScale *elements.Scale
	)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"note", func() error {
			var err error
			if note, err = elements.NewNote("C4"); err != nil {
				return err
			}
			r.print(ctx, "note", note)
			note.Transpose(2)
			r.print(ctx, "note", note)
			return nil
		}},
		{"chord", func() error {
			var err error
			if chord, err = elements.NewChord("C Major", []string{"C4", "E4", "G4"}); err != nil {
				return err
			}
			r.print(ctx, "chord", chord)
			if err := chord.AddNote("B4"); err != nil {
				return err
			}
			r.print(ctx, "chord", chord)
			if err := chord.TransposeHarmonic("P5"); err != nil {
				return err
			}
			r.print(ctx, "chord", chord)
			return nil
		}},
		{"scale", func() error {
			var err error
			if cScale, err = elements.NewScale("C", "C", ""); err != nil {
				return err
			}
			r.print(ctx, "scale", cScale)
			aMinor, err := elements.NewScale("A", "A", "minor")
			if err != nil {
				return err
			}
			r.print(ctx, "scale", aMinor)
			return nil
		}},
		{"instrument", func() error {
			guitar, err := elements.NewInstrument("Guitar")
			if err != nil {
				return err
			}
			for _, e := range []elements.Element{note, chord, cScale} {
				if err := guitar.AddElement(e); err != nil {
					return err
				}
			}
			r.print(ctx, "instrument", guitar)
			return nil
		}},
	}

	for i, step := range steps {
		start := time.Now()
		err := step.fn()
		duration := time.Since(start)

		r.metrics.RecordStep(ctx, step.name, duration, err)
		if err != nil {
			r.lggr.Errorw("Demo step failed", "step", step.name, "err", err)
			return fmt.Errorf("step %d/%d (%s): %w", i+1, len(steps), step.name, err)
		}
		r.lggr.Debugw("Demo step done", "step", step.name, "duration", duration)
	}

	return nil
}

func (r *Runner) print(ctx context.Context, kind string, e elements.Element) {
	rendered := e.String()
	r.metrics.RecordElement(ctx, kind, rendered)
	fmt.Fprintln(r.out, rendered)
}
