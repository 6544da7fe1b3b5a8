package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/infrastructure/cli/helpers"
)

func newReplRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(CommandSpec{
		Name: "history", Help: "show calculation history", Aliases: []string{"hist"},
		Handler: cmdHistory,
	})
	reg.Register(CommandSpec{
		Name: "clear", Help: "clear history (undoable)",
		Handler: cmdClear,
	})
	reg.Register(CommandSpec{
		Name: "undo", Help: "undo last change", Aliases: []string{"u"},
		Handler: cmdUndo,
	})
	reg.Register(CommandSpec{
		Name: "redo", Help: "redo last undone change", Aliases: []string{"r"},
		Handler: cmdRedo,
	})
	reg.Register(CommandSpec{
		Name: "save", Help: "save history to file",
		Handler: cmdSave,
	})
	reg.Register(CommandSpec{
		Name: "load", Help: "load history from file (replaces current)",
		Handler: cmdLoad,
	})
	reg.Register(CommandSpec{
		Name: "autosave", Help: "autosave [on|off] - toggle or show autosave",
		Handler: cmdAutosave,
	})
	reg.Register(CommandSpec{
		Name: "precision", Help: "precision [n] - show or set rounding precision", Aliases: []string{"prec"},
		Handler: cmdPrecision,
	})
	reg.Register(CommandSpec{
		Name: "help", Help: "show this help", Aliases: []string{"?"},
		Handler: cmdHelp,
	})
	reg.Register(CommandSpec{
		Name: "exit", Help: "quit the session", Aliases: []string{"quit", "q"},
		Handler: cmdExit,
	})
	return reg
}

func cmdHistory(r *Repl, args []string) error {
	helpers.RenderHistory(r.out, r.calc.HistoryItems())
	return nil
}

func cmdClear(r *Repl, args []string) error {
	r.calc.Clear()
	fmt.Fprintln(r.out, "History cleared.")
	return nil
}

func cmdUndo(r *Repl, args []string) error {
	if err := r.calc.Undo(); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Undone.")
	return nil
}

func cmdRedo(r *Repl, args []string) error {
	if err := r.calc.Redo(); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Redone.")
	return nil
}

func cmdSave(r *Repl, args []string) error {
	path, err := r.calc.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Saved: %s\n", path)
	return nil
}

func cmdLoad(r *Repl, args []string) error {
	n, err := r.calc.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Loaded %d entries.\n", n)
	return nil
}

func cmdAutosave(r *Repl, args []string) error {
	auto := r.calc.AutoSave()
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Auto-save is %s\n", onOff(auto.Enabled()))
		return nil
	}
	v := isTruthy(args[0])
	auto.SetEnabled(v)
	fmt.Fprintf(r.out, "Auto-save set to %s\n", onOff(v))
	return nil
}

func cmdPrecision(r *Repl, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Precision is %d\n", r.calc.Precision())
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return &domain.ValidationError{Msg: "precision must be an integer"}
	}
	if err := r.calc.SetPrecision(n); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Precision set to %d\n", n)
	return nil
}

func cmdHelp(r *Repl, args []string) error {
	fmt.Fprintln(r.out, "Operations:")
	fmt.Fprintf(r.out, "  %s a b\n", strings.Join(domain.OperationNames(), "|"))
	fmt.Fprintln(r.out, "Commands:")
	for _, spec := range r.registry.Specs() {
		name := spec.Name
		if len(spec.Aliases) > 0 {
			name = fmt.Sprintf("%s (%s)", name, strings.Join(spec.Aliases, ", "))
		}
		fmt.Fprintf(r.out, "  %-20s %s\n", name, spec.Help)
	}
	return nil
}

func cmdExit(r *Repl, args []string) error {
	r.done = true
	return nil
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on", "y":
		return true
	}
	return false
}
