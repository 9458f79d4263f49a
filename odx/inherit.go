package odx

import "github.com/bburda42dot/diag-converter-sub000/internal/logging"

// inherit.go is Phase 3 (spec.md §4.4): flattening the multi-parent
// inheritance graph into one MergedLayer per layer, with cycle detection
// and per-parent-ref exclusion lists. Grounded on diag-odx/src/inheritance.rs
// in the original implementation; re-expressed as a recursive Go walk over
// OdxIndex rather than translated line-for-line.

// MergedLayer is a DiagLayer after inheritance merge (glossary): the
// concrete item lists visible to the layer, with every short name
// appearing at most once (spec.md §4.4 "Override rule").
type MergedLayer struct {
	Source              *xmlDiagLayer
	ComParamRefs        []xmlComParamRef
	DiagComms           []xmlDiagCommEntry
	Dops                []xmlDop
	DtcDops             []xmlDtcDop
	Tables              []xmlTableDop
	GlobalNegResponses  []xmlResponse
	StateCharts         []xmlStateChart
	AdditionalAudiences []xmlAudienceTag
}

func emptyMergedLayer(l *xmlDiagLayer) *MergedLayer {
	m := &MergedLayer{Source: l, StateCharts: l.StateCharts, AdditionalAudiences: l.AdditionalAudiences}
	m.DiagComms = append(m.DiagComms, l.DiagComms.Entries...)
	m.ComParamRefs = append(m.ComParamRefs, l.ComParamRefs...)
	if dd := l.DiagDataDictionarySpec; dd != nil {
		m.Dops = append(m.Dops, dd.DataObjectProps...)
		m.Dops = append(m.Dops, dd.Structures...)
		m.Dops = append(m.Dops, dd.EndOfPduFields...)
		m.Dops = append(m.Dops, dd.StaticFields...)
		m.Dops = append(m.Dops, dd.DynamicLengthFields...)
		m.Dops = append(m.Dops, dd.DynamicEndmarkerFields...)
		m.Dops = append(m.Dops, dd.EnvDataDescs...)
		m.Dops = append(m.Dops, dd.EnvDatas...)
		m.Dops = append(m.Dops, dd.Muxes...)
		m.DtcDops = append(m.DtcDops, dd.DtcDops...)
		m.Tables = append(m.Tables, dd.Tables...)
	}
	m.GlobalNegResponses = append(m.GlobalNegResponses, l.GlobalNegResponses...)
	return m
}

func diagCommEntryShortName(e xmlDiagCommEntry) (string, bool) {
	switch e.Kind {
	case diagCommEntryService:
		return e.Service.ShortName, true
	case diagCommEntryJob:
		return e.Job.ShortName, true
	default:
		// DIAG-COMM-REF carries no short name of its own; the spec leaves
		// its semantics beyond pointer-to-parent-service ambiguous (§9
		// Open Questions), so it is never excluded or overridden here.
		return "", false
	}
}

// mergeLayer recursively merges l and its PARENT-REF ancestry. visited is a
// path-local set (pushed on entry, popped on return) so diamond inheritance
// through two different parents is fine but a true cycle is caught.
func mergeLayer(idx *OdxIndex, layerID string, visited map[string]bool, log *logging.Helper) *MergedLayer {
	layer, ok := idx.layers[layerID]
	if !ok {
		return &MergedLayer{}
	}
	if visited[layerID] {
		log.Warnf("odx: inheritance cycle detected at layer %q; using its own content only", layerID)
		return emptyMergedLayer(layer)
	}
	visited[layerID] = true
	defer delete(visited, layerID)

	merged := &MergedLayer{Source: layer, StateCharts: layer.StateCharts, AdditionalAudiences: layer.AdditionalAudiences}
	for _, pr := range layer.ParentRefs {
		parent := mergeLayer(idx, pr.IDRef, visited, log)
		appendFiltered(merged, parent, pr)
	}
	appendOwn(merged, layer)
	return merged
}

// appendFiltered appends one parent's merged contribution to acc, dropping
// any item whose short name is in that PARENT-REF's own NOT-INHERITED
// exclusion list for its category (spec.md §4.4 Phase 3).
func appendFiltered(acc, parent *MergedLayer, pr xmlParentRef) {
	excluded := func(list []string, name string) bool {
		for _, n := range list {
			if n == name {
				return true
			}
		}
		return false
	}
	for _, e := range parent.DiagComms {
		if name, ok := diagCommEntryShortName(e); ok && excluded(pr.NotInheritedDiagComms, name) {
			continue
		}
		acc.DiagComms = append(acc.DiagComms, e)
	}
	for _, d := range parent.Dops {
		if excluded(pr.NotInheritedDops, d.ShortName) {
			continue
		}
		acc.Dops = append(acc.Dops, d)
	}
	for _, d := range parent.DtcDops {
		if excluded(pr.NotInheritedDops, d.ShortName) {
			continue
		}
		acc.DtcDops = append(acc.DtcDops, d)
	}
	for _, t := range parent.Tables {
		if excluded(pr.NotInheritedTables, t.ShortName) {
			continue
		}
		acc.Tables = append(acc.Tables, t)
	}
	for _, r := range parent.GlobalNegResponses {
		if excluded(pr.NotInheritedGlobalNegResponses, r.ShortName) {
			continue
		}
		acc.GlobalNegResponses = append(acc.GlobalNegResponses, r)
	}
	acc.ComParamRefs = append(acc.ComParamRefs, parent.ComParamRefs...)
}

// appendOwn implements the override rule: own short names are collected,
// any same-named item already accumulated from a parent is dropped, then
// the layer's own items are appended last (spec.md §4.4 "Override rule").
func appendOwn(acc *MergedLayer, l *xmlDiagLayer) {
	ownDiagComm := make(map[string]bool)
	for _, e := range l.DiagComms.Entries {
		if name, ok := diagCommEntryShortName(e); ok {
			ownDiagComm[name] = true
		}
	}
	acc.DiagComms = filterDiagComms(acc.DiagComms, ownDiagComm)
	acc.DiagComms = append(acc.DiagComms, l.DiagComms.Entries...)

	ownDop := make(map[string]bool)
	if dd := l.DiagDataDictionarySpec; dd != nil {
		for _, d := range dd.DataObjectProps {
			ownDop[d.ShortName] = true
		}
		for _, d := range dd.Structures {
			ownDop[d.ShortName] = true
		}
		for _, d := range dd.EndOfPduFields {
			ownDop[d.ShortName] = true
		}
		for _, d := range dd.StaticFields {
			ownDop[d.ShortName] = true
		}
		for _, d := range dd.DynamicLengthFields {
			ownDop[d.ShortName] = true
		}
		for _, d := range dd.DynamicEndmarkerFields {
			ownDop[d.ShortName] = true
		}
		for _, d := range dd.EnvDataDescs {
			ownDop[d.ShortName] = true
		}
		for _, d := range dd.EnvDatas {
			ownDop[d.ShortName] = true
		}
		for _, d := range dd.Muxes {
			ownDop[d.ShortName] = true
		}
		acc.Dops = filterDops(acc.Dops, ownDop)
		acc.Dops = append(acc.Dops, dd.DataObjectProps...)
		acc.Dops = append(acc.Dops, dd.Structures...)
		acc.Dops = append(acc.Dops, dd.EndOfPduFields...)
		acc.Dops = append(acc.Dops, dd.StaticFields...)
		acc.Dops = append(acc.Dops, dd.DynamicLengthFields...)
		acc.Dops = append(acc.Dops, dd.DynamicEndmarkerFields...)
		acc.Dops = append(acc.Dops, dd.EnvDataDescs...)
		acc.Dops = append(acc.Dops, dd.EnvDatas...)
		acc.Dops = append(acc.Dops, dd.Muxes...)

		ownDtc := make(map[string]bool)
		for _, d := range dd.DtcDops {
			ownDtc[d.ShortName] = true
		}
		acc.DtcDops = filterDtcDops(acc.DtcDops, ownDtc)
		acc.DtcDops = append(acc.DtcDops, dd.DtcDops...)

		ownTable := make(map[string]bool)
		for _, t := range dd.Tables {
			ownTable[t.ShortName] = true
		}
		acc.Tables = filterTables(acc.Tables, ownTable)
		acc.Tables = append(acc.Tables, dd.Tables...)
	}

	ownGlobalNeg := make(map[string]bool)
	for _, r := range l.GlobalNegResponses {
		ownGlobalNeg[r.ShortName] = true
	}
	acc.GlobalNegResponses = filterResponses(acc.GlobalNegResponses, ownGlobalNeg)
	acc.GlobalNegResponses = append(acc.GlobalNegResponses, l.GlobalNegResponses...)

	acc.ComParamRefs = append(acc.ComParamRefs, l.ComParamRefs...)
}

func filterDiagComms(in []xmlDiagCommEntry, drop map[string]bool) []xmlDiagCommEntry {
	out := in[:0:0]
	for _, e := range in {
		if name, ok := diagCommEntryShortName(e); ok && drop[name] {
			continue
		}
		out = append(out, e)
	}
	return out
}

func filterDops(in []xmlDop, drop map[string]bool) []xmlDop {
	out := in[:0:0]
	for _, d := range in {
		if drop[d.ShortName] {
			continue
		}
		out = append(out, d)
	}
	return out
}

func filterDtcDops(in []xmlDtcDop, drop map[string]bool) []xmlDtcDop {
	out := in[:0:0]
	for _, d := range in {
		if drop[d.ShortName] {
			continue
		}
		out = append(out, d)
	}
	return out
}

func filterTables(in []xmlTableDop, drop map[string]bool) []xmlTableDop {
	out := in[:0:0]
	for _, t := range in {
		if drop[t.ShortName] {
			continue
		}
		out = append(out, t)
	}
	return out
}

func filterResponses(in []xmlResponse, drop map[string]bool) []xmlResponse {
	out := in[:0:0]
	for _, r := range in {
		if drop[r.ShortName] {
			continue
		}
		out = append(out, r)
	}
	return out
}
