package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/infrastructure/history"
	"github.com/doeshing/calcli/internal/pkg/logger"
	"github.com/doeshing/calcli/internal/services"
)

func newTestRepl(t *testing.T, input string) (*Repl, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	cfg := domain.Config{
		Logging: domain.LoggingSettings{Dir: filepath.Join(dir, "logs")},
		History: domain.HistorySettings{
			Dir:      filepath.Join(dir, "hist"),
			MaxSize:  100,
			Backend:  domain.BackendCSV,
			Encoding: "utf-8",
		},
		Input: domain.InputSettings{Precision: 6, MaxInputValue: 1e12},
	}
	store := history.NewCSVStore(cfg.HistoryFile(), cfg.History.Encoding)
	calc := services.NewCalculator(cfg, store, logger.NewStd(false))

	out := &bytes.Buffer{}
	repl := &Repl{
		calc:     calc,
		cfg:      cfg,
		registry: newReplRegistry(),
		in:       strings.NewReader(input),
		out:      out,
	}
	return repl, out
}

func TestRepl_OperationAndHistory(t *testing.T) {
	repl, out := newTestRepl(t, "add 2 3\nhistory\nexit\n")

	if err := repl.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Result: 5") {
		t.Errorf("missing result output:\n%s", text)
	}
	if !strings.Contains(text, "add(2, 3) = 5") {
		t.Errorf("missing history line:\n%s", text)
	}
}

func TestRepl_ErrorsDoNotEndSession(t *testing.T) {
	repl, out := newTestRepl(t, "divide 1 0\nadd 1 1\nexit\n")

	if err := repl.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Error: division by zero") {
		t.Errorf("missing rendered error:\n%s", text)
	}
	if !strings.Contains(text, "Result: 2") {
		t.Errorf("session did not continue after the error:\n%s", text)
	}
}

func TestRepl_UndoRedoFlow(t *testing.T) {
	repl, out := newTestRepl(t, "add 1 1\nundo\nhistory\nredo\nhistory\nexit\n")

	if err := repl.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Undone.") || !strings.Contains(text, "Redone.") {
		t.Errorf("undo/redo not acknowledged:\n%s", text)
	}
	if !strings.Contains(text, "No history recorded yet.") {
		t.Errorf("history after undo should be empty:\n%s", text)
	}
	if !strings.Contains(text, "add(1, 1) = 2") {
		t.Errorf("history after redo should contain the record:\n%s", text)
	}
}

func TestRepl_UnknownCommand(t *testing.T) {
	repl, out := newTestRepl(t, "bogus\nexit\n")

	if err := repl.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if !strings.Contains(out.String(), "unknown command: bogus") {
		t.Errorf("missing unknown-command message:\n%s", out.String())
	}
}

func TestRepl_PrecisionCommand(t *testing.T) {
	repl, out := newTestRepl(t, "precision 2\ndivide 1 3\nprecision 99\nexit\n")

	if err := repl.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Precision set to 2") {
		t.Errorf("precision change not acknowledged:\n%s", text)
	}
	if !strings.Contains(text, "Result: 0.33") {
		t.Errorf("result not rounded to new precision:\n%s", text)
	}
	if !strings.Contains(text, "Error: precision must be between 0 and 18") {
		t.Errorf("out-of-range precision not rejected:\n%s", text)
	}
}

func TestRepl_AutosaveToggle(t *testing.T) {
	repl, out := newTestRepl(t, "autosave\nautosave on\nautosave\nexit\n")

	if err := repl.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Auto-save is OFF") {
		t.Errorf("initial autosave state not shown:\n%s", text)
	}
	if !strings.Contains(text, "Auto-save set to ON") {
		t.Errorf("toggle not acknowledged:\n%s", text)
	}
	if !strings.Contains(text, "Auto-save is ON") {
		t.Errorf("new state not shown:\n%s", text)
	}
}

func TestRepl_SaveLoad(t *testing.T) {
	repl, out := newTestRepl(t, "add 4 4\nsave\nclear\nload\nhistory\nexit\n")

	if err := repl.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Saved: ") {
		t.Errorf("save not acknowledged:\n%s", text)
	}
	if !strings.Contains(text, "Loaded 1 entries.") {
		t.Errorf("load count missing:\n%s", text)
	}
	if !strings.Contains(text, "add(4, 4) = 8") {
		t.Errorf("loaded record not listed:\n%s", text)
	}
}

func TestRepl_EOFEndsSession(t *testing.T) {
	repl, out := newTestRepl(t, "add 1 2\n")

	if err := repl.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Errorf("missing farewell on EOF:\n%s", out.String())
	}
}
