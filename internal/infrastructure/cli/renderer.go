package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/ports"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#06B6D4")
)

// Renderer prints dispatch outcomes. Captured child output is written
// verbatim; only labels are styled.
type Renderer struct {
	out       io.Writer
	errOut    io.Writer
	apologize func() string

	command lipgloss.Style
	label   lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
}

// NewRenderer builds a renderer for out/errOut. With noColor every style is
// plain text.
func NewRenderer(out, errOut io.Writer, noColor bool) *Renderer {
	r := &Renderer{out: out, errOut: errOut, apologize: Apologize}
	if noColor {
		plain := lipgloss.NewStyle()
		r.command, r.label, r.ok, r.failed = plain, plain, plain, plain
		return r
	}
	lr := lipgloss.NewRenderer(out)
	r.command = lr.NewStyle().Bold(true).Foreground(colorAccent)
	r.label = lr.NewStyle().Foreground(colorMuted)
	r.ok = lr.NewStyle().Bold(true).Foreground(colorSuccess)
	r.failed = lr.NewStyle().Bold(true).Foreground(colorError)
	return r
}

// ReportOutcome implements ports.Reporter.
func (r *Renderer) ReportOutcome(outcome domain.Outcome) {
	res := outcome.Result
	fmt.Fprintf(r.out, "%s %s\n", r.label.Render("[LOGAN]"), r.command.Render(outcome.Command))

	code := fmt.Sprintf("exit code: %d", res.ExitCode)
	if res.Succeeded() {
		fmt.Fprintln(r.out, r.ok.Render(code))
	} else {
		fmt.Fprintln(r.out, r.failed.Render(code))
	}
	if res.Err != nil {
		fmt.Fprintf(r.out, "%s %v\n", r.failed.Render("error:"), res.Err)
	}

	if res.Stderr != "" {
		fmt.Fprintln(r.out, r.label.Render("stderr:"))
		writeBlock(r.out, res.Stderr)
	}
	if res.Stdout != "" {
		fmt.Fprintln(r.out, r.label.Render("stdout:"))
		writeBlock(r.out, res.Stdout)
	}
}

// ReportFailure implements ports.Reporter.
func (r *Renderer) ReportFailure(command string, err error) {
	fmt.Fprintf(r.errOut, "%s %s: %v\n", r.label.Render("[LOGAN]"), r.failed.Render(failureTitle(err)), err)
	if errors.Is(err, domain.ErrWrongSyntax) || errors.Is(err, domain.ErrActionAttrsMissing) {
		fmt.Fprintln(r.errOut, "usage: logan <verb>:<object>[:<context>] <params...>")
	}
	fmt.Fprintf(r.errOut, "%s %s\n", r.label.Render("[LOGAN]"), r.apologize())
}

// RenderDoctorReport prints one line per check.
func (r *Renderer) RenderDoctorReport(report domain.HealthReport) {
	for _, check := range report.Checks {
		status := strings.ToUpper(string(check.Status))
		switch check.Status {
		case domain.HealthOK:
			status = r.ok.Render(status)
		case domain.HealthFail:
			status = r.failed.Render(status)
		}
		fmt.Fprintf(r.out, "[%s] %s - %s\n", status, check.Name, check.Details)
	}
}

func failureTitle(err error) string {
	switch {
	case errors.Is(err, domain.ErrWrongSyntax):
		return "wrong syntax"
	case errors.Is(err, domain.ErrActionAttrsMissing):
		return "missing attributes"
	case errors.Is(err, domain.ErrActionNotFound):
		return "no matching action"
	case errors.Is(err, domain.ErrActionPathMissing):
		return "action executable missing"
	case errors.Is(err, domain.ErrConfigFileNotFound), errors.Is(err, domain.ErrConfigLoad):
		return "configuration error"
	default:
		return "dispatch failed"
	}
}

func writeBlock(w io.Writer, text string) {
	io.WriteString(w, text)
	if !strings.HasSuffix(text, "\n") {
		io.WriteString(w, "\n")
	}
}

var _ ports.Reporter = (*Renderer)(nil)
