package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/schema"
)

// Runner drives one interactive form session: it walks the schema in order,
// turns each field into a terminal prompt, feeds every answer through the
// session's mutation API, and submits once the completeness gate opens.
type Runner struct {
	driver   PromptDriver
	output   OutputFormat
	pageSize int
}

// New constructs a runner with defaults (survey driver, JSON output).
func New(options ...Option) *Runner {
	r := &Runner{
		driver: newSurveyDriver(),
		output: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// ContentType reports the serialization format used by Run.
func (r *Runner) ContentType() string {
	switch r.output {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Run prompts for every field, then submits. Any error path, including a
// user interrupt, cancels the session so the caller's OnCancel hook fires
// and the state is discarded. A schema containing a zero-option choice
// field leaves the form permanently incomplete; Run reports ErrIncomplete
// without ever invoking OnSubmit.
func (r *Runner) Run(ctx context.Context, session *form.Session) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if session == nil {
		return nil, errors.New("tui: session is required")
	}

	sch := session.Schema()
	for i, field := range sch.Fields {
		if err := r.promptField(ctx, field, i, session); err != nil {
			session.Cancel()
			return nil, err
		}
	}

	if !session.Complete() {
		session.Cancel()
		return nil, ErrIncomplete
	}

	values, err := session.Submit()
	if err != nil {
		return nil, err
	}
	return Serialize(sch, values, r.output)
}

func (r *Runner) promptField(ctx context.Context, field schema.FieldDefinition, index int, session *form.Session) error {
	if field.Type == schema.TypeOptions {
		if len(field.Options) == 0 {
			key := schema.FieldKey(field, index)
			return r.driver.Info(ctx, fmt.Sprintf("%s has no options and cannot be answered", key))
		}
		if field.Multiple {
			return r.promptMultiSelect(ctx, field, index, session)
		}
		return r.promptSelect(ctx, field, index, session)
	}
	if field.Type == schema.TypeNumber {
		return r.promptNumber(ctx, field, index, session)
	}
	return r.promptText(ctx, field, index, session)
}

func (r *Runner) promptText(ctx context.Context, field schema.FieldDefinition, index int, session *form.Session) error {
	key := schema.FieldKey(field, index)
	for {
		value, err := r.driver.Input(ctx, InputConfig{
			Message: promptMessage(field, key),
			Default: currentScalar(session, key),
		})
		if err != nil {
			return err
		}
		session.SetScalar(key, value)
		if form.FieldComplete(field, index, session.State()) {
			return nil
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("%s is required", key)); err != nil {
			return err
		}
	}
}

func (r *Runner) promptNumber(ctx context.Context, field schema.FieldDefinition, index int, session *form.Session) error {
	key := schema.FieldKey(field, index)
	for {
		value, err := r.driver.Input(ctx, InputConfig{
			Message: promptMessage(field, key),
			Default: currentScalar(session, key),
		})
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s is required", key)); err != nil {
				return err
			}
			continue
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s must be numeric", key)); err != nil {
				return err
			}
			continue
		}
		// Numbers travel as strings; parsing only gates the prompt.
		session.SetScalar(key, trimmed)
		return nil
	}
}

func (r *Runner) promptSelect(ctx context.Context, field schema.FieldDefinition, index int, session *form.Session) error {
	key := schema.FieldKey(field, index)
	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      promptMessage(field, key),
			Options:      field.Options,
			DefaultIndex: indexOf(field.Options, currentScalar(session, key)),
			PageSize:     r.pageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			if err := r.driver.Info(ctx, fmt.Sprintf("invalid %s selection", key)); err != nil {
				return err
			}
			continue
		}
		session.ToggleOption(key, field.Options[idx], false)
		return nil
	}
}

func (r *Runner) promptMultiSelect(ctx context.Context, field schema.FieldDefinition, index int, session *form.Session) error {
	key := schema.FieldKey(field, index)
	for {
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  promptMessage(field, key),
			Options:  field.Options,
			Defaults: indicesOf(field.Options, session.State().Selections(key)),
			PageSize: r.pageSize,
		})
		if err != nil {
			return err
		}

		applySelectionDiff(session, key, field.Options, indices)

		if form.FieldComplete(field, index, session.State()) {
			return nil
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("%s needs at least one selection", key)); err != nil {
			return err
		}
	}
}

// applySelectionDiff reconciles the prompt answer with the stored selection
// set using toggle mutations only: options newly checked toggle on, options
// newly unchecked toggle off.
func applySelectionDiff(session *form.Session, key string, options []string, indices []int) {
	want := make(map[string]struct{}, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			want[options[idx]] = struct{}{}
		}
	}
	for _, option := range options {
		_, wanted := want[option]
		if wanted != session.State().Selected(key, option) {
			session.ToggleOption(key, option, true)
		}
	}
}

func promptMessage(field schema.FieldDefinition, key string) string {
	label := field.Label
	if label == "" {
		label = key
	}
	switch field.Type {
	case schema.TypeEmail:
		return label + " (email)"
	case schema.TypePhone:
		return label + " (phone)"
	case schema.TypeDate:
		return label + " (date)"
	default:
		return label
	}
}

func currentScalar(session *form.Session, key string) string {
	value, _ := session.State().Scalar(key)
	return value
}
