package demo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ib-77/bindchain/internal/config"
	"github.com/ib-77/bindchain/internal/metrics"
	"github.com/ib-77/bindchain/pkg/monad/list"
	"github.com/ib-77/bindchain/pkg/monad/maybe"
	"github.com/ib-77/bindchain/pkg/monad/writer"
	"go.uber.org/zap"
)

type Kind string

const (
	Sequence  Kind = "sequence"
	Optional  Kind = "optional"
	Annotated Kind = "annotated"
)

// AllKinds lists the scenarios in the order they are run.
var AllKinds = []Kind{Sequence, Optional, Annotated}

var (
	ErrUnknownStep = errors.New("unknown step")
	ErrUnknownKind = errors.New("unknown kind")
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Sequence, Optional, Annotated:
		return k, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Outcome is the printable result of one chain.
type Outcome struct {
	Kind    Kind
	Input   string
	Output  string
	Log     []string
	Present bool
}

// Runner runs the configured scenarios. Transforms are resolved once by
// NewRunner and wrapped with metrics.Observe.
type Runner struct {
	cfg       config.Config
	forks     []func(string) list.List[string]
	optional  []func(float64) maybe.Maybe[float64]
	annotated []func(int) writer.Logged[int]
	decorate  []func(string) writer.Logged[string]
	logger    *zap.Logger
}

// NewRunner resolves the step names of cfg. rec may be nil.
func NewRunner(cfg config.Config, rec *metrics.Recorder, logger *zap.Logger) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Runner{cfg: cfg, logger: logger}
	var errs []error

	for _, suffixes := range cfg.Sequence.Steps {
		name := "fork[" + strings.Join(suffixes, ",") + "]"
		r.forks = append(r.forks, metrics.Observe(rec, string(Sequence), name, Fork(suffixes...)))
	}

	for _, name := range cfg.Optional.Steps {
		f, ok := OptionalStep(name).Get()
		if !ok {
			errs = append(errs, fmt.Errorf("optional: %w %q (known: %s)",
				ErrUnknownStep, name, strings.Join(OptionalStepNames(), ", ")))
			continue
		}
		r.optional = append(r.optional, metrics.Observe(rec, string(Optional), name, f))
	}

	for _, name := range cfg.Annotated.Steps {
		f, ok := AnnotatedStep(name).Get()
		if !ok {
			errs = append(errs, fmt.Errorf("annotated: %w %q (known: %s)",
				ErrUnknownStep, name, strings.Join(AnnotatedStepNames(), ", ")))
			continue
		}
		r.annotated = append(r.annotated, metrics.Observe(rec, string(Annotated), name, f))
	}

	for _, emoji := range cfg.Annotated.Emoji {
		r.decorate = append(r.decorate, metrics.Observe(rec, string(Annotated), "decorate", Decorate(emoji)))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Run runs the given kinds, or all of them when none is given.
func (r *Runner) Run(kinds ...Kind) []Outcome {
	if len(kinds) == 0 {
		kinds = AllKinds
	}

	var outcomes []Outcome
	for _, k := range kinds {
		switch k {
		case Sequence:
			outcomes = append(outcomes, r.Sequence())
		case Optional:
			outcomes = append(outcomes, r.Optional()...)
		case Annotated:
			outcomes = append(outcomes, r.Annotated()...)
		}
	}
	return outcomes
}

func (r *Runner) Sequence() Outcome {
	seed := list.Of(r.cfg.Sequence.Seed...)
	out := seed.Chain(r.forks...)

	r.logger.Debug("sequence chain finished",
		zap.Int("steps", len(r.forks)), zap.Int("elements", out.Len()))

	return Outcome{
		Kind:    Sequence,
		Input:   seed.String(),
		Output:  out.String(),
		Present: !out.IsEmpty(),
	}
}

func (r *Runner) Optional() []Outcome {
	outcomes := make([]Outcome, 0, len(r.cfg.Optional.Inputs))
	for _, in := range r.cfg.Optional.Inputs {
		out := maybe.Just(in).Chain(r.optional...)

		r.logger.Debug("optional chain finished",
			zap.Float64("input", in), zap.Bool("present", out.IsJust()))

		outcomes = append(outcomes, Outcome{
			Kind:    Optional,
			Input:   strconv.FormatFloat(in, 'g', -1, 64),
			Output:  out.String(),
			Present: out.IsJust(),
		})
	}
	return outcomes
}

func (r *Runner) Annotated() []Outcome {
	number := writer.Unit(r.cfg.Annotated.Seed).Chain(r.annotated...)
	decorated := writer.Unit("").Chain(r.decorate...)

	r.logger.Debug("annotated chains finished",
		zap.Int("value", number.Value()), zap.Strings("log", number.Log()))

	return []Outcome{
		{
			Kind:    Annotated,
			Input:   strconv.Itoa(r.cfg.Annotated.Seed),
			Output:  strconv.Itoa(number.Value()),
			Log:     number.Log(),
			Present: true,
		},
		{
			Kind:    Annotated,
			Input:   strconv.Quote(""),
			Output:  decorated.Value(),
			Log:     decorated.Log(),
			Present: true,
		},
	}
}
