// Package cli implements the cobra command tree and the interactive
// calculator session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/calcli/internal/app"
	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/infrastructure/cli/helpers"
	"github.com/doeshing/calcli/internal/services"
)

// Repl runs the interactive calculator loop. One command is fully processed
// before the next is read; domain errors are rendered and the loop
// continues.
type Repl struct {
	calc     *services.Calculator
	cfg      domain.Config
	registry *Registry
	in       io.Reader
	out      io.Writer
	done     bool
}

// NewRepl builds a session over the container's calculator.
func NewRepl(container *app.Container, in io.Reader, out io.Writer) *Repl {
	return &Repl{
		calc:     container.Calculator,
		cfg:      container.Config,
		registry: newReplRegistry(),
		in:       in,
		out:      out,
	}
}

// Run reads commands until exit or EOF.
func (r *Repl) Run() error {
	fmt.Fprintln(r.out, "calcli interactive calculator (type 'help' for commands)")
	scanner := bufio.NewScanner(r.in)
	for !r.done {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		name, args := strings.ToLower(fields[0]), fields[1:]
		if err := r.dispatch(name, args); err != nil {
			r.renderError(err)
		}
	}
	fmt.Fprintln(r.out, "Bye!")
	return scanner.Err()
}

func (r *Repl) dispatch(name string, args []string) error {
	if spec, ok := r.registry.Resolve(name); ok {
		return spec.Handler(r, args)
	}
	if domain.IsOperation(name) {
		a, b, err := services.ParseOperands(args, r.cfg)
		if err != nil {
			return err
		}
		result, err := r.calc.Calculate(name, a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Result: %s\n", helpers.FormatResult(result))
		return nil
	}
	return &domain.ValidationError{Msg: fmt.Sprintf("unknown command: %s (try 'help')", name)}
}

func (r *Repl) renderError(err error) {
	var opErr *domain.OperationError
	var valErr *domain.ValidationError
	var histErr *domain.HistoryError
	if errors.As(err, &opErr) || errors.As(err, &valErr) || errors.As(err, &histErr) {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Unexpected error: %v\n", err)
}
