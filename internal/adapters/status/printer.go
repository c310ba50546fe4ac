// Package status prints short colored progress lines for build steps.
package status

import (
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/envkit/internal/ui/output"
	"go.trai.ch/envkit/internal/ui/style"
)

// Printer implements ports.StatusPrinter.
type Printer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewPrinter creates a Printer writing to w. A nil writer means stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: output.New(w)}
}

// Print writes "[ TAG ] subject" with the tag in the named color.
func (p *Printer) Print(tag, subject, color string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	styled := p.out.String(tag).Foreground(termenv.RGBColor(string(style.ByName(color)))).Bold()
	_, _ = p.out.WriteString(Format(styled.String(), subject) + "\n")
}

// Format renders a status line from an already styled tag.
func Format(tag, subject string) string {
	if subject == "" {
		return "[ " + tag + " ]"
	}
	return "[ " + tag + " ] " + subject
}
