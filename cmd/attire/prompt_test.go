package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// pressEnter feeds an Enter keypress through the model's Update.
func pressEnter(t *testing.T, m promptModel) promptModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm, ok := next.(promptModel)
	if !ok {
		t.Fatalf("Update returned %T, want promptModel", next)
	}
	return pm
}

// questionByKey finds a question in the add flow by key.
func questionByKey(t *testing.T, key string) question {
	t.Helper()
	for _, q := range addQuestions() {
		if q.key == key {
			return q
		}
	}
	t.Fatalf("add flow has no question %q", key)
	return question{}
}

// TestAddQuestionsValidators checks the per-field input validation of the
// add flow.
func TestAddQuestionsValidators(t *testing.T) {
	cases := []struct {
		key   string
		input string
		ok    bool
	}{
		{"photo", "", false},
		{"photo", "shirt.jpg", true},
		{"category", "Sock", false},
		{"category", "Top", true},
		{"category", "outerwear", true},
		{"color", "", false},
		{"color", "red", true},
		{"pattern", "", false},
		{"pattern", "Striped", true},
		{"formality", "Fancy", false},
		{"formality", "Smart Casual", true},
		{"formality", "semi-formal", true},
	}
	for _, tc := range cases {
		q := questionByKey(t, tc.key)
		err := q.validate(tc.input)
		if tc.ok && err != nil {
			t.Errorf("%s: validate(%q) = %v, want nil", tc.key, tc.input, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: validate(%q) = nil, want error", tc.key, tc.input)
		}
	}
}

// TestPromptValidationBlocksAdvance: Enter on an invalid answer keeps the
// field focused and surfaces the error; a valid answer clears it and moves
// on.
func TestPromptValidationBlocksAdvance(t *testing.T) {
	m := newPromptModel(addQuestions())

	m = pressEnter(t, m)
	if m.idx != 0 {
		t.Fatalf("empty photo path advanced to question %d", m.idx)
	}
	if m.errMsg == "" {
		t.Error("expected an inline error for the empty photo path")
	}
	if !strings.Contains(m.View(), m.errMsg) {
		t.Error("inline error not rendered in the view")
	}

	m.inputs[0].SetValue("shirt.jpg")
	m = pressEnter(t, m)
	if m.idx != 1 || m.errMsg != "" {
		t.Fatalf("valid photo path: idx = %d, errMsg = %q", m.idx, m.errMsg)
	}

	m.inputs[1].SetValue("Sock")
	m = pressEnter(t, m)
	if m.idx != 1 {
		t.Fatalf("unknown category advanced to question %d", m.idx)
	}

	m.inputs[1].SetValue("top")
	m = pressEnter(t, m)
	if m.idx != 2 || m.errMsg != "" {
		t.Errorf("case-folded category: idx = %d, errMsg = %q", m.idx, m.errMsg)
	}
}
