package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
)

// Format specifies the output format for audit reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes audit results.
type Reporter struct {
	out       io.Writer
	format    Format
	showClean bool
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithClean includes compliant icons in text output.
func WithClean(show bool) ReporterOption {
	return func(r *Reporter) { r.showClean = show }
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format, opts ...ReporterOption) *Reporter {
	r := &Reporter{out: out, format: format}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type jsonReport struct {
	Summary Summary  `json:"summary"`
	Icons   []Result `json:"icons"`
}

// Report writes results in the reporter's format.
func (r *Reporter) Report(results []Result) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(results)
	default:
		return r.reportText(results)
	}
}

func (r *Reporter) reportJSON(results []Result) error {
	if results == nil {
		results = []Result{}
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(jsonReport{Summary: Summarize(results), Icons: results}), "encoding JSON report")
}

func (r *Reporter) reportText(results []Result) error {
	sum := Summarize(results)

	if sum.Medium == 0 && sum.High == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ %d icon(s) passed", sum.Icons))
	} else {
		var parts []string
		if sum.High > 0 {
			parts = append(parts, color.RedString("%d high", sum.High))
		}
		if sum.Medium > 0 {
			parts = append(parts, color.YellowString("%d medium", sum.Medium))
		}
		fmt.Fprintf(r.out, "✗ %d of %d icon(s) need attention: %s\n",
			sum.Medium+sum.High, sum.Icons, strings.Join(parts, ", "))
	}
	if sum.Fixed > 0 {
		fmt.Fprintf(r.out, "  %d fix(es) applied automatically\n", sum.Fixed)
	}

	for i := range results {
		res := &results[i]
		if res.Clean() && len(res.AppliedFixes()) == 0 && !r.showClean {
			continue
		}
		fmt.Fprintln(r.out)
		r.printIcon(res)
	}
	return nil
}

func (r *Reporter) printIcon(res *Result) {
	sev := res.Severity()
	fmt.Fprintf(r.out, "%s %s %s\n",
		res.Name,
		color.New(color.FgHiBlack).Sprintf("(%s)", res.ID),
		severityColor(sev).Sprint(sev))

	for _, e := range res.Errors {
		// Format:  • kind: message [suggested]
		var sb strings.Builder
		sb.WriteString("  • ")
		sb.WriteString(severityColor(e.Severity).Sprint(e.Kind))
		sb.WriteString(": ")
		sb.WriteString(e.Message)
		if e.SuggestedName != "" {
			sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [suggested: %s]", e.SuggestedName))
		}
		fmt.Fprintln(r.out, sb.String())
	}
	for _, f := range res.Fixes {
		if f.Applied {
			fmt.Fprintf(r.out, "  %s %s: %s\n", color.GreenString("✓ fixed"), f.Kind, f.Description)
		} else {
			fmt.Fprintf(r.out, "  %s %s: %s\n", color.RedString("✗ fix failed"), f.Kind, f.Err)
		}
	}
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case SeverityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
