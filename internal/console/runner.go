package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/regwizard/pkg/logger"
	"github.com/dmitrymomot/regwizard/pkg/validator"
	"github.com/dmitrymomot/regwizard/svc/registration"
)

// Menu choices.
const (
	ChoiceNext     = "Next"
	ChoicePrevious = "Previous"
	ChoiceSubmit   = "Submit"
	ChoiceQuit     = "Quit"
)

const (
	msgFixErrors  = "Please correct the highlighted fields."
	msgSubmitting = "Submitting..."
	msgCancelled  = "Registration cancelled."
	msgBusy       = "A submission is already in progress."
)

// Runner walks a wizard from the first step to a successful submission.
type Runner struct {
	wizard *registration.Wizard
	driver Driver
	format Format
	logger *slog.Logger
}

type Option func(*Runner)

func WithDriver(d Driver) Option {
	return func(r *Runner) {
		if d != nil {
			r.driver = d
		}
	}
}

// WithSummaryFormat sets how the summary step is printed. Defaults to FormatText.
func WithSummaryFormat(f Format) Option {
	return func(r *Runner) {
		r.format = f
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a runner over w. Without WithDriver it prompts on the
// process terminal.
func NewRunner(w *registration.Wizard, opts ...Option) *Runner {
	r := &Runner{
		wizard: w,
		format: FormatText,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(os.Stdout)
	}
	r.logger = r.logger.With(logger.Component("console"))
	return r
}

// Run prompts until the registration is submitted successfully or the user
// quits. Quitting returns nil; an interrupted prompt returns ErrAborted.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.driver.Info(ctx, RenderProgress(r.wizard.Progress())); err != nil {
			return err
		}

		var (
			done bool
			err  error
		)
		if step := r.wizard.CurrentStep(); step == registration.LastStep {
			done, err = r.summaryStep(ctx)
		} else {
			done, err = r.formStep(ctx, step)
		}
		if err != nil || done {
			return err
		}
	}
}

func (r *Runner) formStep(ctx context.Context, index int) (bool, error) {
	step, _ := registration.StepAt(index)
	if err := r.driver.Info(ctx, step.Heading); err != nil {
		return false, err
	}

	for _, f := range step.Fields {
		if err := r.promptField(ctx, f); err != nil {
			return false, err
		}
	}

	options := []string{ChoiceNext}
	if index > 0 {
		options = append(options, ChoicePrevious)
	}
	options = append(options, ChoiceQuit)

	choice, err := r.choose(ctx, "Continue?", options)
	if err != nil {
		return false, err
	}

	switch choice {
	case ChoiceNext:
		if !r.wizard.Next() {
			return false, r.reportStepErrors(ctx, step.Fields)
		}
	case ChoicePrevious:
		r.wizard.Previous()
	case ChoiceQuit:
		return true, r.driver.Info(ctx, msgCancelled)
	}
	return false, nil
}

// promptField asks for one value and shows its error right after the edit.
// Masked fields keep their stored value when the answer is left blank.
func (r *Runner) promptField(ctx context.Context, f registration.Field) error {
	spec, _ := registration.SpecFor(f)
	current, err := r.wizard.Values().Get(f)
	if err != nil {
		return err
	}

	cfg := InputConfig{Message: spec.Label}
	var answer string
	if spec.Sensitive {
		if current != "" {
			cfg.Help = "Leave blank to keep the current value"
		}
		answer, err = r.driver.Password(ctx, cfg)
		if err == nil && answer == "" {
			answer = current
		}
	} else {
		cfg.Default = current
		cfg.Help = "e.g. " + spec.Placeholder
		answer, err = r.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}

	if err := r.wizard.EditField(f, answer); err != nil {
		return err
	}
	if msg, ok := r.wizard.Errors()[f]; ok {
		return r.driver.Info(ctx, "  ! "+msg)
	}
	return nil
}

func (r *Runner) reportStepErrors(ctx context.Context, fields []registration.Field) error {
	errs := r.wizard.Errors()
	lines := []string{msgFixErrors}
	for _, f := range fields {
		if msg, ok := errs[f]; ok {
			lines = append(lines, fmt.Sprintf("  ! %s: %s", fieldLabel(f), msg))
		}
	}
	return r.driver.Info(ctx, strings.Join(lines, "\n"))
}

func fieldLabel(f registration.Field) string {
	if spec, ok := registration.SpecFor(f); ok {
		return spec.Label
	}
	return f.String()
}

func (r *Runner) summaryStep(ctx context.Context) (bool, error) {
	rendered, err := RenderSummary(r.wizard.Summary(), r.format)
	if err != nil {
		return false, err
	}
	if err := r.driver.Info(ctx, strings.TrimRight(rendered, "\n")); err != nil {
		return false, err
	}

	choice, err := r.choose(ctx, "Ready to submit?", []string{ChoiceSubmit, ChoicePrevious, ChoiceQuit})
	if err != nil {
		return false, err
	}

	switch choice {
	case ChoicePrevious:
		r.wizard.Previous()
		return false, nil
	case ChoiceQuit:
		return true, r.driver.Info(ctx, msgCancelled)
	}

	return r.submit(ctx)
}

// submit reports whether the registration went through. A failed attempt
// keeps the summary on screen so the user can retry; the failure itself is
// announced by the wizard's notification deliverer.
func (r *Runner) submit(ctx context.Context) (bool, error) {
	if err := r.driver.Info(ctx, msgSubmitting); err != nil {
		return false, err
	}

	fut, err := r.wizard.Submit(ctx)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			lines := []string{msgFixErrors}
			for _, ve := range verrs {
				lines = append(lines, fmt.Sprintf("  ! %s: %s", fieldLabel(registration.Field(ve.Field)), ve.Message))
			}
			return false, r.driver.Info(ctx, strings.Join(lines, "\n"))
		case errors.Is(err, registration.ErrSubmissionInProgress):
			return false, r.driver.Info(ctx, msgBusy)
		default:
			return false, err
		}
	}

	receipt, err := fut.AwaitContext(ctx)
	if err != nil {
		if registration.IsSubmissionError(err) {
			r.logger.LogAttrs(ctx, slog.LevelDebug, "submission failed, staying on summary", logger.Error(err))
			return false, nil
		}
		return false, err
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "registration completed", logger.SubmissionID(receipt.ID))
	return true, nil
}

func (r *Runner) choose(ctx context.Context, message string, options []string) (string, error) {
	idx, err := r.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("%w: %d", ErrUnknownChoice, idx)
	}
	return options[idx], nil
}
