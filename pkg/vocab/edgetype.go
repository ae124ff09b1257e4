// Package vocab holds the closed enumerations of edge predicates and
// metadata predicates used across an ontology graph, together with the
// string-keyed registries that decode OBO-graph predicate strings into
// them.
package vocab

import "fmt"

// EdgeType is a closed set of relation kinds an Edge may carry.
type EdgeType int

const (
	IsA EdgeType = iota
	IsAInverse
	DiseaseHasFeature
	DiseaseHasBasisInDisruptionOf
	DiseaseHasBasisInDysfunctionOf
	DiseaseHasBasisInFeature
	DiseaseHasInflammationSite
	DiseaseHasLocation
	DiseaseHasMajorFeature
	DiseaseCausesFeature
	DiseaseRespondsTo
	DiseaseSharesFeaturesOf
	DiseaseHasBasisInDevelopmentOf
	HasModifier
	RealizedInResponseTo
	RealizedInResponseToStimulus
	TransmittedBy
	DiseasesCausesDisruptionOf
	DiseaseArisesFromStructure
	PredisposesTowards
	RealizedIn
)

var edgeTypeNames = map[EdgeType]string{
	IsA:                            "IS_A",
	IsAInverse:                     "IS_A_INVERSE",
	DiseaseHasFeature:              "DISEASE_HAS_FEATURE",
	DiseaseHasBasisInDisruptionOf:  "DISEASE_HAS_BASIS_IN_DISRUPTION_OF",
	DiseaseHasBasisInDysfunctionOf: "DISEASE_HAS_BASIS_IN_DYSFUNCTION_OF",
	DiseaseHasBasisInFeature:       "DISEASE_HAS_BASIS_IN_FEATURE",
	DiseaseHasInflammationSite:     "DISEASE_HAS_INFLAMMATION_SITE",
	DiseaseHasLocation:             "DISEASE_HAS_LOCATION",
	DiseaseHasMajorFeature:         "DISEASE_HAS_MAJOR_FEATURE",
	DiseaseCausesFeature:           "DISEASE_CAUSES_FEATURE",
	DiseaseRespondsTo:              "DISEASE_RESPONDS_TO",
	DiseaseSharesFeaturesOf:        "DISEASE_SHARES_FEATURES_OF",
	DiseaseHasBasisInDevelopmentOf: "DISEASE_HAS_BASIS_IN_DEVELOPMENT_OF",
	HasModifier:                    "HAS_MODIFIER",
	RealizedInResponseTo:           "REALIZED_IN_RESPONSE_TO",
	RealizedInResponseToStimulus:   "REALIZED_IN_RESPONSE_TO_STIMULUS",
	TransmittedBy:                  "TRANSMITTED_BY",
	DiseasesCausesDisruptionOf:     "DISEASES_CAUSES_DISRUPTION_OF",
	DiseaseArisesFromStructure:     "DISEASE_ARISES_FROM_STRUCTURE",
	PredisposesTowards:             "PREDISPOSES_TOWARDS",
	RealizedIn:                     "REALIZED_IN",
}

// String implements fmt.Stringer.
func (e EdgeType) String() string {
	if name, ok := edgeTypeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EdgeType(%d)", int(e))
}

// edgeTypeRegistry maps the predicate key extracted from an OBO-graph
// edge's "pred" field (the final path segment, in "ns#fragment" form when
// the IRI carries a "#") to its EdgeType. Built once, read-only thereafter.
var edgeTypeRegistry = map[string]EdgeType{
	"is_a":                                          IsA,
	"RO_0004020":                                     DiseaseHasBasisInDysfunctionOf,
	"RO_0004021":                                     DiseaseHasBasisInDisruptionOf,
	"RO_0004022":                                     DiseaseHasBasisInFeature,
	"RO_0004026":                                     DiseaseHasLocation,
	"RO_0009501":                                     RealizedInResponseTo,
	"RO_0004027":                                     DiseaseHasInflammationSite,
	"RO_0004028":                                     RealizedInResponseToStimulus,
	"RO_0004029":                                     DiseaseHasFeature,
	"RO_0002573":                                     HasModifier,
	"RO_0002451":                                     TransmittedBy,
	"RO_0004024":                                     DiseasesCausesDisruptionOf,
	"RO_0004030":                                     DiseaseArisesFromStructure,
	"mondo#predisposes_towards":                      PredisposesTowards,
	"mondo#disease_has_major_feature":                DiseaseHasMajorFeature,
	"mondo#disease_causes_feature":                   DiseaseCausesFeature,
	"mondo#disease_responds_to":                      DiseaseRespondsTo,
	"mondo#disease_shares_features_of":                DiseaseSharesFeaturesOf,
	"mondo#disease_has_basis_in_development_of":       DiseaseHasBasisInDevelopmentOf,
	"BFO_0000054":                                     RealizedIn,
}

// UnknownPredicateError reports an edge predicate key with no registry entry.
type UnknownPredicateError struct {
	Key string
}

func (e *UnknownPredicateError) Error() string {
	return fmt.Sprintf("unknown edge predicate: %q", e.Key)
}

// DecodeEdgeType looks up an edge predicate key in the registry. Unlike
// metadata predicates, an unrecognized edge predicate is a hard parse
// error: the graph's structural meaning would otherwise be silently lost.
func DecodeEdgeType(key string) (EdgeType, error) {
	et, ok := edgeTypeRegistry[key]
	if !ok {
		return 0, &UnknownPredicateError{Key: key}
	}
	return et, nil
}
