package validator

// Fix records one auto-fix attempt on an icon.
type Fix struct {
	Kind        Kind   `json:"kind"`
	Applied     bool   `json:"applied"`
	Description string `json:"description"`
	// Err is the host's rejection message when Applied is false.
	Err string `json:"error,omitempty"`
	// Resolved counts the reported errors this fix removed.
	Resolved int `json:"resolved,omitempty"`
}

// Result is everything known about one icon after a run.
type Result struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Errors are the violations still present after auto-fix.
	Errors []Error `json:"errors"`
	// Found is the validator's report before any fix was applied.
	Found []Error `json:"found,omitempty"`
	// Fixes are the auto-fix attempts made during the run.
	Fixes []Fix `json:"fixes,omitempty"`
}

// Severity is the aggregate severity of the remaining errors.
func (r *Result) Severity() Severity {
	if r == nil {
		return SeverityNone
	}
	return Aggregate(r.Errors)
}

// Clean reports whether no errors remain.
func (r *Result) Clean() bool {
	return r == nil || len(r.Errors) == 0
}

// AppliedFixes returns the fixes that were applied.
func (r *Result) AppliedFixes() []Fix {
	if r == nil {
		return nil
	}
	var res []Fix
	for _, f := range r.Fixes {
		if f.Applied {
			res = append(res, f)
		}
	}
	return res
}

// Summary counts results by aggregate severity.
type Summary struct {
	Icons  int `json:"icons"`
	Clean  int `json:"clean"`
	Medium int `json:"medium"`
	High   int `json:"high"`
	Fixed  int `json:"fixed"`
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	s := Summary{Icons: len(results)}
	for i := range results {
		switch results[i].Severity() {
		case SeverityNone:
			s.Clean++
		case SeverityMedium:
			s.Medium++
		case SeverityHigh:
			s.High++
		}
		s.Fixed += len(results[i].AppliedFixes())
	}
	return s
}
