// Package validate implements the structural validator (C8, spec.md §4.8):
// a set of read-only checks over an already-parsed ir.Database. It never
// mutates its input and never fails a conversion by itself -- callers
// decide whether to surface, log, or ignore the returned issues.
package validate

import (
	"fmt"
	"sort"

	"github.com/bburda42dot/diag-converter-sub000/ir"
)

// Severity classifies an Issue. Nothing in this package is ever fatal on
// its own (spec.md §7 "Validator findings -- never fatal by themselves").
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is one diagnostic finding. Path names the structural location the
// same way the ODX reader's MissingElement(path) errors do, so the CLI's
// `validate` subcommand can print a consistent location string.
type Issue struct {
	Severity Severity
	Path     string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Path, i.Message)
}

// Validate runs every structural check named in spec.md §4.8 against d and
// returns the ordered list of findings (empty slice, never nil, when valid).
func Validate(d *ir.Database) []Issue {
	issues := []Issue{}
	issues = append(issues, checkVariantShortNames(d)...)
	issues = append(issues, checkBaseVariant(d)...)
	issues = append(issues, checkServiceShortNamesUnique(d)...)
	issues = append(issues, checkParentRefsResolve(d)...)
	issues = append(issues, checkDtcUniqueness(d)...)
	issues = append(issues, checkTableKeyReferences(d)...)
	return issues
}

// checkVariantShortNames: every Variant has a non-empty short name.
func checkVariantShortNames(d *ir.Database) []Issue {
	var issues []Issue
	for i := range d.Variants {
		if d.Variants[i].DiagLayer.ShortName == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     fmt.Sprintf("variants[%d]", i),
				Message:  "variant has an empty short name",
			})
		}
	}
	return issues
}

// checkBaseVariant: at least one Variant is marked base.
func checkBaseVariant(d *ir.Database) []Issue {
	if d.BaseVariant() != nil {
		return nil
	}
	return []Issue{{
		Severity: SeverityError,
		Path:     "variants",
		Message:  "no variant is marked as the base variant",
	}}
}

// checkServiceShortNamesUnique: within one DiagLayer, the short names of
// diag_services union single_ecu_jobs are unique (spec.md §3.2). S6 expects
// exactly one issue per duplicated name, not one per colliding pair.
func checkServiceShortNamesUnique(d *ir.Database) []Issue {
	var issues []Issue
	check := func(path string, l *ir.DiagLayer) {
		seen := make(map[string]int, len(l.DiagServices)+len(l.SingleEcuJobs))
		reported := make(map[string]bool)
		for i := range l.DiagServices {
			seen[l.DiagServices[i].DiagComm.ShortName]++
		}
		for i := range l.SingleEcuJobs {
			seen[l.SingleEcuJobs[i].DiagComm.ShortName]++
		}
		var dup []string
		for name, n := range seen {
			if n > 1 && !reported[name] {
				dup = append(dup, name)
				reported[name] = true
			}
		}
		sort.Strings(dup)
		for _, name := range dup {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path,
				Message:  fmt.Sprintf("duplicate service/job short name %q", name),
			})
		}
	}
	for i := range d.Variants {
		check(fmt.Sprintf("variants[%d]", i), &d.Variants[i].DiagLayer)
	}
	for i := range d.FunctionalGroups {
		check(fmt.Sprintf("functional_groups[%d]", i), &d.FunctionalGroups[i].DiagLayer)
	}
	return issues
}

// checkParentRefsResolve: every ParentRef naming a Variant appears in the
// Database's variant index; otherwise emit a warning (spec.md §4.8 "or a
// warning is emitted" -- this is the only check in the list that is
// explicitly non-fatal).
func checkParentRefsResolve(d *ir.Database) []Issue {
	var issues []Issue
	for i := range d.Variants {
		v := &d.Variants[i]
		for j, pr := range v.ParentRefs {
			if pr.Ref.Kind != ir.ParentRefVariant || pr.Ref.Variant == nil {
				continue
			}
			name := pr.Ref.Variant.DiagLayer.ShortName
			if d.VariantByShortName(name) == nil {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Path:     fmt.Sprintf("variants[%d].parent_refs[%d]", i, j),
					Message:  fmt.Sprintf("parent ref %q does not resolve to a known variant", name),
				})
			}
		}
	}
	return issues
}

// checkDtcUniqueness: DTC trouble codes are unique at the Database level
// (spec.md §3.1, §4.4 "deduplicated by trouble code").
func checkDtcUniqueness(d *ir.Database) []Issue {
	var issues []Issue
	seen := make(map[uint32]bool, len(d.Dtcs))
	reported := make(map[uint32]bool)
	for i := range d.Dtcs {
		code := d.Dtcs[i].TroubleCode
		if seen[code] && !reported[code] {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "dtcs",
				Message:  fmt.Sprintf("duplicate DTC trouble code %#x", code),
			})
			reported[code] = true
		}
		seen[code] = true
	}
	return issues
}

// checkTableKeyReferences: a service whose request contains a TableKey
// parameter references an existing TableDop or TableRow (spec.md §4.8).
// The IR stores the reference as a direct pointer rather than a short
// name, so "existing" collapses to "non-nil for the declared ReferenceKind".
func checkTableKeyReferences(d *ir.Database) []Issue {
	var issues []Issue
	visit := func(path string, s *ir.DiagService) {
		if s.Request == nil {
			return
		}
		for i := range s.Request.Params {
			walkTableKeyParam(fmt.Sprintf("%s.request.params[%d]", path, i), &s.Request.Params[i], &issues)
		}
	}
	for vi := range d.Variants {
		for si := range d.Variants[vi].DiagLayer.DiagServices {
			s := &d.Variants[vi].DiagLayer.DiagServices[si]
			visit(fmt.Sprintf("variants[%d].diag_services[%d]", vi, si), s)
		}
	}
	return issues
}

func walkTableKeyParam(path string, p *ir.Param, issues *[]Issue) {
	if p.ParamType != ir.ParamTableKey || p.Data.TableKey == nil {
		return
	}
	tk := p.Data.TableKey
	switch tk.ReferenceKind {
	case ir.TableKeyReferenceTableDop:
		if tk.TableDop == nil {
			*issues = append(*issues, Issue{
				Severity: SeverityError,
				Path:     path,
				Message:  "TableKey parameter references a nil TableDop",
			})
		}
	case ir.TableKeyReferenceTableRow:
		if tk.TableRow == nil {
			*issues = append(*issues, Issue{
				Severity: SeverityError,
				Path:     path,
				Message:  "TableKey parameter references a nil TableRow",
			})
		}
	}
}
