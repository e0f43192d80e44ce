package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/schema"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	multiIdx  [][]int
	err       error // returned by every prompt when set
	infos     []string
	inputPos  int
	selectPos int
	multiPos  int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.err != nil {
		return -1, s.err
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func TestRun_TextAndSingleSelect(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Alice"},
		selectIdx: []int{0},
	}

	var submitted form.Values
	session := form.NewSession(schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Name", Type: schema.TypeText},
		{Label: "Role", Type: schema.TypeOptions, Options: []string{"Admin", "User"}},
	}}, form.Hooks{OnSubmit: func(v form.Values) { submitted = v }})

	out, err := New(WithPromptDriver(driver)).Run(context.Background(), session)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{"Name": "Alice", "Role": "Admin"}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if submitted == nil {
		t.Fatal("OnSubmit should have fired")
	}
}

func TestRun_MultiSelectRepromptsUntilNonEmpty(t *testing.T) {
	driver := &stubDriver{
		multiIdx: [][]int{{}, {1}},
	}

	session := form.NewSession(schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Tags", Type: schema.TypeOptions, Options: []string{"A", "B", "C"}, Multiple: true},
	}}, form.Hooks{})

	out, err := New(WithPromptDriver(driver)).Run(context.Background(), session)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.multiPos != 2 {
		t.Fatalf("expected a re-prompt after empty answer, prompts=%d", driver.multiPos)
	}
	if len(driver.infos) == 0 {
		t.Fatal("expected a required hint between prompts")
	}

	var decoded map[string][]string
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(map[string][]string{"Tags": {"B"}}, decoded); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MultiSelectDiffTogglesOff(t *testing.T) {
	// The prompt answer unchecks A and checks B; the runner must apply
	// the difference as toggles, landing on {B}.
	driver := &stubDriver{
		multiIdx: [][]int{{1}},
	}

	session := form.NewSession(schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Tags", Type: schema.TypeOptions, Options: []string{"A", "B"}, Multiple: true},
	}}, form.Hooks{})
	session.ToggleOption("Tags", "A", true)

	out, err := New(WithPromptDriver(driver)).Run(context.Background(), session)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var decoded map[string][]string
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(map[string][]string{"Tags": {"B"}}, decoded); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_NumberReprompts(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"abc", "", "42"},
	}

	session := form.NewSession(schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Age", Type: schema.TypeNumber},
	}}, form.Hooks{})

	out, err := New(WithPromptDriver(driver)).Run(context.Background(), session)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.inputPos != 3 {
		t.Fatalf("expected 3 prompts, got %d", driver.inputPos)
	}
	if !strings.Contains(string(out), `"Age":"42"`) {
		t.Fatalf("number should travel as string: %s", out)
	}
}

func TestRun_PositionalKeyAndRequiredLoop(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"", "hello"},
	}

	session := form.NewSession(schema.FormSchema{Fields: []schema.FieldDefinition{
		{Type: schema.TypeText}, // empty label resolves to field_0
	}}, form.Hooks{})

	out, err := New(WithPromptDriver(driver)).Run(context.Background(), session)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.inputPos != 2 {
		t.Fatalf("expected re-prompt after empty answer, prompts=%d", driver.inputPos)
	}
	var decoded map[string]string
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["field_0"] != "hello" {
		t.Fatalf("expected field_0=hello, got %v", decoded)
	}
}

func TestRun_AbortCancelsSession(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}

	cancelled := false
	session := form.NewSession(schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Name", Type: schema.TypeText},
	}}, form.Hooks{OnCancel: func() { cancelled = true }})

	_, err := New(WithPromptDriver(driver)).Run(context.Background(), session)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if !cancelled {
		t.Fatal("abort should cancel the session")
	}
	if !session.Closed() {
		t.Fatal("session should be closed after abort")
	}
}

func TestRun_DegenerateSchemaNeverSubmits(t *testing.T) {
	driver := &stubDriver{}

	submitted := false
	cancelled := false
	session := form.NewSession(schema.FormSchema{Fields: []schema.FieldDefinition{
		{Label: "Choice", Type: schema.TypeOptions}, // no options: unsatisfiable
	}}, form.Hooks{
		OnSubmit: func(form.Values) { submitted = true },
		OnCancel: func() { cancelled = true },
	})

	_, err := New(WithPromptDriver(driver)).Run(context.Background(), session)
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if submitted {
		t.Fatal("OnSubmit must never fire for a degenerate schema")
	}
	if !cancelled {
		t.Fatal("runner should cancel the blocked session")
	}
	if len(driver.infos) == 0 {
		t.Fatal("expected an info line about the zero-option field")
	}
}
