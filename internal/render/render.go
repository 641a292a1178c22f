package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"advent-solver/internal/almanac"
	"advent-solver/internal/diagnostic"
	"advent-solver/internal/solver"
)

// Renderer writes styled text to w.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// New creates a renderer.
func New(w io.Writer, styles Styles) *Renderer {
	return &Renderer{w: w, styles: styles}
}

// Reports prints each day's parts followed by its diagnostics.
func (r *Renderer) Reports(reports []solver.Report) error {
	var b strings.Builder

	for i, rep := range reports {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(r.styles.Title.Render(fmt.Sprintf("Day %d: %s", rep.Day.Number, rep.Day.Title)))
		b.WriteByte(' ')
		b.WriteString(r.styles.Muted.Render("(" + rep.Elapsed.Round(time.Microsecond).String() + ")"))
		b.WriteByte('\n')

		width := 0
		for _, p := range rep.Answer.Parts {
			width = max(width, len(p.Name))
		}

		for _, p := range rep.Answer.Parts {
			b.WriteString(r.styles.Name.Render(fmt.Sprintf("%-*s", width, p.Name)))
			b.WriteString("  ")
			b.WriteString(r.styles.Value.Render(fmt.Sprint(p.Value)))
			b.WriteByte('\n')
		}

		r.diagnostics(&b, rep.Answer.Diagnostics, "  ")
	}

	_, err := io.WriteString(r.w, b.String())

	return err
}

// Diagnostics prints every finding, errors first.
func (r *Renderer) Diagnostics(d diagnostic.Diagnostics) error {
	var b strings.Builder

	if d.Len() == 0 {
		b.WriteString(r.styles.Muted.Render("no findings"))
		b.WriteByte('\n')
	}

	r.diagnostics(&b, d, "")

	_, err := io.WriteString(r.w, b.String())

	return err
}

func (r *Renderer) diagnostics(b *strings.Builder, d diagnostic.Diagnostics, indent string) {
	for _, diag := range d.All() {
		style := r.styles.Info

		switch diag.Severity {
		case diagnostic.SeverityError:
			style = r.styles.Error
		case diagnostic.SeverityWarning:
			style = r.styles.Warning
		}

		b.WriteString(indent)
		b.WriteString(style.Render(diag.Severity.String() + ": " + diag.String()))
		b.WriteByte('\n')
	}
}

// Days lists registered days.
func (r *Renderer) Days(days []solver.Day) error {
	var b strings.Builder

	for _, d := range days {
		b.WriteString(r.styles.Value.Render(fmt.Sprintf("%2d", d.Number)))
		b.WriteString("  ")
		b.WriteString(fmt.Sprintf("%-13s", d.Name))
		b.WriteString(r.styles.Muted.Render(d.Title))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.w, b.String())

	return err
}

// Plan prints the steps of a resolved plan.
func (r *Renderer) Plan(from, to almanac.Category, plan almanac.Plan) error {
	line := fmt.Sprintf("%s -> %s (%s, %d steps)", from, to, plan.Direction(), len(plan.Steps))

	steps := make([]string, 0, len(plan.Steps))
	for _, s := range plan.Steps {
		steps = append(steps, s.String())
	}

	out := r.styles.Title.Render(line) + "\n"
	if len(steps) > 0 {
		out += r.styles.Muted.Render(strings.Join(steps, ", ")) + "\n"
	}

	_, err := io.WriteString(r.w, out)

	return err
}

// Ranges prints one mapped range per line followed by the lowest start.
func (r *Renderer) Ranges(ranges []almanac.Range) error {
	var b strings.Builder

	for _, rg := range ranges {
		b.WriteString(r.styles.Name.Render(rg.String()))
		b.WriteByte('\n')
	}

	if lowest, ok := almanac.MinStart(ranges); ok {
		b.WriteString(r.styles.Title.Render(fmt.Sprintf("lowest: %d", lowest)))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.w, b.String())

	return err
}

// Points prints input and output values side by side.
func (r *Renderer) Points(in, out []uint64) error {
	var b strings.Builder

	for i := range min(len(in), len(out)) {
		b.WriteString(r.styles.Name.Render(fmt.Sprintf("%d -> ", in[i])))
		b.WriteString(r.styles.Value.Render(fmt.Sprint(out[i])))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.w, b.String())

	return err
}
