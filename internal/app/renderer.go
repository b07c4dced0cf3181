package app

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/rescache/internal/ui/output"
	"go.trai.ch/rescache/internal/ui/style"
)

// Renderer prints validity results, one line per resource.
type Renderer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: output.New(w)}
}

// Resource prints the validity of id and, if it is invalid, the reason.
func (r *Renderer) Resource(id string, valid bool, problem error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	icon := r.out.String(style.Valid(valid)).Foreground(r.out.Color(string(style.ValidColor(valid))))
	line := fmt.Sprintf("%s %s", icon, id)
	if !valid && problem != nil {
		line += "  " + r.out.String(problem.Error()).Foreground(r.out.Color(string(style.Slate))).String()
	}
	_, _ = fmt.Fprintln(r.out, line)
}

// Removed prints that id left the workspace.
func (r *Renderer) Removed(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	icon := r.out.String(style.Dot).Foreground(r.out.Color(string(style.Slate)))
	_, _ = fmt.Fprintf(r.out, "%s %s  removed\n", icon, id)
}

// Summary prints the number of invalid resources out of total.
func (r *Renderer) Summary(total, invalid int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if invalid == 0 {
		_, _ = fmt.Fprintf(r.out, "\n%d resources, all valid\n", total)
		return
	}
	msg := fmt.Sprintf("%d resources, %d invalid", total, invalid)
	_, _ = fmt.Fprintf(r.out, "\n%s\n", r.out.String(msg).Foreground(r.out.Color(string(style.Red))).Bold())
}
