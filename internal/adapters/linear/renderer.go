// Package linear provides a synchronous, line-oriented plan renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/ui/output"
	"go.trai.ch/debugdump/internal/ui/style"
	"go.trai.ch/zerr"
)

// kindWidth is the column the package spec starts at.
const kindWidth = 10

// Renderer implements ports.PlanRenderer for dry runs.
// It prints one "<kind> <spec>" line per step.
type Renderer struct {
	stdout io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. Nil writers default to os.Stdout.
func NewRenderer(stdout io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Renderer{
		stdout: stdout,
		output: output.New(stdout),
	}
}

// Render prints step, colouring the kind column when stdout is a terminal.
func (r *Renderer) Render(step domain.Step) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := step.Kind.String()
	pad := strings.Repeat(" ", max(kindWidth-len(kind), 1))
	label := r.output.String(kind).Foreground(r.output.Color(string(style.StepColor(kind)))).String()

	if _, err := fmt.Fprintf(r.stdout, "%s%s%s\n", label, pad, step.Spec); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to render step"), "spec", step.Spec)
	}
	return nil
}
