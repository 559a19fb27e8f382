package registration

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/dmitrymomot/regwizard/pkg/async"
	"github.com/dmitrymomot/regwizard/pkg/logger"
)

// State is a snapshot of the wizard.
type State struct {
	CurrentStep      int
	Values           FormData
	Errors           FieldErrors
	SubmissionStatus Status
}

// Position tells where a step sits relative to the current one.
type Position string

const (
	PositionCompleted Position = "completed"
	PositionCurrent   Position = "current"
	PositionUpcoming  Position = "upcoming"
)

type StepProgress struct {
	Index    int
	Title    string
	Position Position
}

// Wizard drives a single registration session: field edits, step navigation
// gated by validation, and submission from the summary step.
// Methods are safe for concurrent use.
type Wizard struct {
	mu     sync.Mutex
	step   int
	values FormData
	errors FieldErrors

	controller *Controller
	logger     *slog.Logger
}

// New creates a wizard positioned on the first step with empty values.
func New(opts ...Option) *Wizard {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Wizard{
		errors:     FieldErrors{},
		controller: NewController(opts...),
		logger:     o.logger.With(logger.Component("wizard")),
	}
}

// EditField stores value and re-validates the field. Editing the password
// also re-validates the confirmation once it has been filled in or flagged.
func (w *Wizard) EditField(name Field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.values.Set(name, value); err != nil {
		w.logger.LogAttrs(context.Background(), slog.LevelDebug, "edit of unknown field rejected", logger.Field(name.String()))
		return err
	}

	w.revalidate(name)
	if name == FieldPassword && (w.values.ConfirmPassword != "" || w.errors.Has(FieldConfirmPassword)) {
		w.revalidate(FieldConfirmPassword)
	}
	return nil
}

// caller must hold w.mu
func (w *Wizard) revalidate(f Field) {
	if msg, failed := ValidateField(w.values, f); failed {
		w.errors[f] = msg
		return
	}
	delete(w.errors, f)
}

// Next validates the current step and advances by one when it is valid.
// It reports whether the step changed; on the summary step it does nothing.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step >= LastStep {
		return false
	}

	fields := steps[w.step].Fields
	errs := Validate(w.values, fields...)
	for _, f := range fields {
		delete(w.errors, f)
	}
	maps.Copy(w.errors, errs)

	if len(errs) > 0 {
		invalid := make([]string, 0, len(errs))
		for _, f := range fields {
			if errs.Has(f) {
				invalid = append(invalid, f.String())
			}
		}
		w.logger.LogAttrs(context.Background(), slog.LevelDebug, "step validation failed",
			logger.Step(w.step),
			logger.Fields(invalid...),
		)
		return false
	}

	w.step++
	w.logger.LogAttrs(context.Background(), slog.LevelDebug, "step advanced", logger.Step(w.step))
	return true
}

// Previous moves back one step without validating. It reports whether the step changed.
func (w *Wizard) Previous() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step <= 0 {
		return false
	}
	w.step--
	return true
}

// Submit validates the whole record and hands it to the submission
// controller. It is only allowed on the summary step and never changes the
// step itself. An invalid record is reported as validator.ValidationErrors
// and its errors are stored; nothing is sent in that case.
func (w *Wizard) Submit(ctx context.Context) (*async.Future[Receipt], error) {
	w.mu.Lock()
	if w.step != LastStep {
		w.mu.Unlock()
		return nil, ErrNotOnFinalStep
	}
	if w.controller.Pending() {
		w.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	if errs := Validate(w.values); len(errs) > 0 {
		w.errors = errs
		w.mu.Unlock()
		return nil, errs.AsValidationErrors()
	}
	data := w.values
	w.mu.Unlock()

	return w.controller.Submit(ctx, data, w.resetForm)
}

// resetForm restores the defaults but keeps the submission status.
func (w *Wizard) resetForm() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.step = 0
	w.values = FormData{}
	w.errors = FieldErrors{}
}

// Reset discards all input and returns to the first step. A settled
// submission status goes back to idle; a pending one is left running.
func (w *Wizard) Reset() {
	w.resetForm()
	w.controller.Reset()
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return State{
		CurrentStep:      w.step,
		Values:           w.values,
		Errors:           w.errors.Clone(),
		SubmissionStatus: w.controller.Status(),
	}
}

func (w *Wizard) CurrentStep() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Values() FormData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.values
}

func (w *Wizard) Errors() FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errors.Clone()
}

func (w *Wizard) Status() Status {
	return w.controller.Status()
}

// Summary projects the current values for display.
func (w *Wizard) Summary() []SummarySection {
	return Summarize(w.Values())
}

// Progress describes every step relative to the current one.
func (w *Wizard) Progress() []StepProgress {
	current := w.CurrentStep()

	out := make([]StepProgress, len(steps))
	for i, s := range steps {
		pos := PositionUpcoming
		switch {
		case i < current:
			pos = PositionCompleted
		case i == current:
			pos = PositionCurrent
		}
		out[i] = StepProgress{Index: i, Title: s.Title, Position: pos}
	}
	return out
}
