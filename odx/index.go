package odx

// index.go is Phase 2 (spec.md §4.4): OdxIndex maps every globally unique
// ODX @ID to the element it identifies, partitioned by kind, and is the
// sole authority ID-REF resolution goes through. SNREF (short-name)
// resolution stays layer-local and is handled separately by
// dopByShortNameInLayer / diagCommByShortNameInLayer, since a short name
// is only unique within one layer's scope, never globally.
type OdxIndex struct {
	layers             map[string]*xmlDiagLayer
	layerKinds         map[string]xmlLayerKind
	requests           map[string]*xmlRequest
	responses          map[string]*xmlResponse
	dops               map[string]*xmlDop
	dtcDops            map[string]*xmlDtcDop
	tableDops          map[string]*xmlTableDop
	units              map[string]*xmlUnit
	physicalDimensions map[string]*xmlPhysicalDimension
}

func newOdxIndex() *OdxIndex {
	return &OdxIndex{
		layers:             make(map[string]*xmlDiagLayer),
		layerKinds:         make(map[string]xmlLayerKind),
		requests:           make(map[string]*xmlRequest),
		responses:          make(map[string]*xmlResponse),
		dops:               make(map[string]*xmlDop),
		dtcDops:            make(map[string]*xmlDtcDop),
		tableDops:          make(map[string]*xmlTableDop),
		units:              make(map[string]*xmlUnit),
		physicalDimensions: make(map[string]*xmlPhysicalDimension),
	}
}

// dopKindTag names match the real ODX element each slice of
// xmlDataDictionarySpec is decoded from; buildIndex stamps xmlDop.XsiType
// with these so reader.go's IR-mapping switch can dispatch without
// re-deriving the kind from which slice an entry came from.
const (
	tagDataObjectProp        = "DATA-OBJECT-PROP"
	tagStructure             = "STRUCTURE"
	tagEndOfPduField         = "END-OF-PDU-FIELD"
	tagStaticField           = "STATIC-FIELD"
	tagDynamicLengthField    = "DYNAMIC-LENGTH-FIELD"
	tagDynamicEndmarkerField = "DYNAMIC-ENDMARKER-FIELD"
	tagEnvDataDesc           = "ENV-DATA-DESC"
	tagEnvData               = "ENV-DATA"
	tagMux                   = "MUX"
	tagDtcDop                = "DTC-DOP"
)

func buildIndex(c *xmlLayerContainer) *OdxIndex {
	idx := newOdxIndex()
	index := func(layers []xmlDiagLayer, kind xmlLayerKind) {
		for i := range layers {
			l := &layers[i]
			if kind == layerBaseVariant {
				l.IsBaseVariant = true
			}
			idx.layers[l.ID] = l
			idx.layerKinds[l.ID] = kind
			indexLayerDictionary(idx, l)
		}
	}
	index(c.BaseVariants, layerBaseVariant)
	index(c.EcuVariants, layerEcuVariant)
	index(c.Protocols, layerProtocol)
	index(c.FunctionalGroups, layerFunctionalGroup)
	index(c.EcuSharedDatas, layerEcuSharedData)
	return idx
}

func indexLayerDictionary(idx *OdxIndex, l *xmlDiagLayer) {
	for i := range l.Requests {
		idx.requests[l.Requests[i].ID] = &l.Requests[i]
	}
	for i := range l.PosResponses {
		idx.responses[l.PosResponses[i].ID] = &l.PosResponses[i]
	}
	for i := range l.NegResponses {
		idx.responses[l.NegResponses[i].ID] = &l.NegResponses[i]
	}
	for i := range l.GlobalNegResponses {
		idx.responses[l.GlobalNegResponses[i].ID] = &l.GlobalNegResponses[i]
	}
	dd := l.DiagDataDictionarySpec
	if dd == nil {
		return
	}
	stampAndIndex := func(dops []xmlDop, tag string) {
		for i := range dops {
			dops[i].XsiType = tag
			idx.dops[dops[i].ID] = &dops[i]
		}
	}
	stampAndIndex(dd.DataObjectProps, tagDataObjectProp)
	stampAndIndex(dd.Structures, tagStructure)
	stampAndIndex(dd.EndOfPduFields, tagEndOfPduField)
	stampAndIndex(dd.StaticFields, tagStaticField)
	stampAndIndex(dd.DynamicLengthFields, tagDynamicLengthField)
	stampAndIndex(dd.DynamicEndmarkerFields, tagDynamicEndmarkerField)
	stampAndIndex(dd.EnvDataDescs, tagEnvDataDesc)
	stampAndIndex(dd.EnvDatas, tagEnvData)
	stampAndIndex(dd.Muxes, tagMux)
	for i := range dd.DtcDops {
		dd.DtcDops[i].XsiType = tagDtcDop
		idx.dtcDops[dd.DtcDops[i].ID] = &dd.DtcDops[i]
	}
	for i := range dd.Tables {
		idx.tableDops[dd.Tables[i].ID] = &dd.Tables[i]
	}
	if dd.UnitSpec != nil {
		for i := range dd.UnitSpec.Units {
			idx.units[dd.UnitSpec.Units[i].ID] = &dd.UnitSpec.Units[i]
		}
		for i := range dd.UnitSpec.PhysicalDimensions {
			idx.physicalDimensions[dd.UnitSpec.PhysicalDimensions[i].ID] = &dd.UnitSpec.PhysicalDimensions[i]
		}
	}
}

// dopByShortNameInLayer implements DOP-SNREF resolution (spec.md §4.4 Phase
// 4 "DOP-SNREF via a local name scan"): SNREFs only ever resolve within the
// layer that declares them, never index-wide.
func dopByShortNameInLayer(l *xmlDiagLayer, name string) (*xmlDop, bool) {
	dd := l.DiagDataDictionarySpec
	if dd == nil {
		return nil, false
	}
	all := [][]xmlDop{
		dd.DataObjectProps, dd.Structures, dd.EndOfPduFields, dd.StaticFields,
		dd.DynamicLengthFields, dd.DynamicEndmarkerFields, dd.EnvDataDescs,
		dd.EnvDatas, dd.Muxes,
	}
	for _, group := range all {
		for i := range group {
			if group[i].ShortName == name {
				return &group[i], true
			}
		}
	}
	for i := range dd.DtcDops {
		if dd.DtcDops[i].ShortName == name {
			return &dd.DtcDops[i].xmlDop, true
		}
	}
	return nil, false
}
