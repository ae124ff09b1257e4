package vocab

import "fmt"

// MetadataPredicate is a closed set of ontology/term-level metadata
// annotation kinds (basicPropertyValues predicates, xref-like fields).
type MetadataPredicate int

const (
	Unknown MetadataPredicate = iota
	CreatedBy
	CreationDate
	HasOboNamespace
	HasAlternativeId
	RdfSchemaComment
	Date
	OwlDeprecated
	IsAnonymous
	Consider
	EditorNotes
	Creator
	Description
	License
	Rights
	Subject
	Title
	DefaultNamespace
	LogicalDefinitionViewRelation
	SavedBy
	CloseMatch
	ExactMatch
	BroadMatch
	NarrowMatch
	ExcludedSubclassOf
	SeeAlso
	IsMetadataTag
	ShortHand
	TermReplacedBy
	Related
	ExcludedSynonym
	IsClassLevel
	Pathogenesis
	NeverInTaxon
	InTaxon
	Source
	HasOboFormatVersion
	Homepage
)

var metadataPredicateNames = map[MetadataPredicate]string{
	Unknown:                        "UNKNOWN",
	CreatedBy:                      "CREATED_BY",
	CreationDate:                   "CREATION_DATE",
	HasOboNamespace:                "HAS_OBO_NAMESPACE",
	HasAlternativeId:               "HAS_ALTERNATIVE_ID",
	RdfSchemaComment:               "RDF_SCHEMA_COMMENT",
	Date:                           "DATE",
	OwlDeprecated:                  "OWL_DEPRECATED",
	IsAnonymous:                    "IS_ANONYMOUS",
	Consider:                       "CONSIDER",
	EditorNotes:                    "EDITOR_NOTES",
	Creator:                        "CREATOR",
	Description:                    "DESCRIPTION",
	License:                        "LICENSE",
	Rights:                         "RIGHTS",
	Subject:                        "SUBJECT",
	Title:                          "TITLE",
	DefaultNamespace:               "DEFAULT_NAMESPACE",
	LogicalDefinitionViewRelation:  "LOGICAL_DEFINITION_VIEW_RELATION",
	SavedBy:                        "SAVED_BY",
	CloseMatch:                     "CLOSE_MATCH",
	ExactMatch:                     "EXACT_MATCH",
	BroadMatch:                     "BROAD_MATCH",
	NarrowMatch:                    "NARROW_MATCH",
	ExcludedSubclassOf:             "EXCLUDED_SUBCLASS_OF",
	SeeAlso:                        "SEE_ALSO",
	IsMetadataTag:                  "IS_METADATA_TAG",
	ShortHand:                      "SHORT_HAND",
	TermReplacedBy:                 "TERM_REPLACED_BY",
	Related:                        "RELATED",
	ExcludedSynonym:                "EXCLUDED_SYNONYM",
	IsClassLevel:                   "IS_CLASS_LEVEL",
	Pathogenesis:                   "PATHOGENESIS",
	NeverInTaxon:                   "NEVER_IN_TAXON",
	InTaxon:                        "IN_TAXON",
	Source:                         "SOURCE",
	HasOboFormatVersion:            "HAS_OBO_FORMAT_VERSION",
	Homepage:                       "HOMEPAGE",
}

// String implements fmt.Stringer.
func (p MetadataPredicate) String() string {
	if name, ok := metadataPredicateNames[p]; ok {
		return name
	}
	return fmt.Sprintf("MetadataPredicate(%d)", int(p))
}

// metadataPredicateRegistry maps the predicate key from a
// basicPropertyValues entry (the "ns#fragment" form such as
// "oboInOwl#created_by", or the bare final path segment for predicates
// like "date"/"creator") to its MetadataPredicate.
var metadataPredicateRegistry = map[string]MetadataPredicate{
	"oboInOwl#created_by":                       CreatedBy,
	"oboInOwl#creation_date":                    CreationDate,
	"oboInOwl#hasOBONamespace":                  HasOboNamespace,
	"oboInOwl#hasAlternativeId":                 HasAlternativeId,
	"oboInOwl#is_class_level":                   IsClassLevel,
	"oboInOwl#is_anonymous":                     IsAnonymous,
	"oboInOwl#consider":                         Consider,
	"oboInOwl#default-namespace":                DefaultNamespace,
	"oboInOwl#logical-definition-view-relation": LogicalDefinitionViewRelation,
	"oboInOwl#saved-by":                         SavedBy,
	"oboInOwl#is_metadata_tag":                  IsMetadataTag,
	"oboInOwl#shorthand":                        ShortHand,
	"oboInOwl#hasOBOFormatVersion":              HasOboFormatVersion,
	"core#closeMatch":                           CloseMatch,
	"core#exactMatch":                           ExactMatch,
	"core#broadMatch":                           BroadMatch,
	"core#narrowMatch":                          NarrowMatch,
	"rdf-schema#comment":                        RdfSchemaComment,
	"rdf-schema#seeAlso":                        SeeAlso,
	"mondo#related":                             Related,
	"mondo#excluded_subClassOf":                 ExcludedSubclassOf,
	"mondo#pathogenesis":                        Pathogenesis,
	"date":                                      Date,
	"owl#deprecated":                            OwlDeprecated,
	"hsapdv#editor_notes":                       EditorNotes,
	"creator":                                   Creator,
	"description":                               Description,
	"license":                                   License,
	"rights":                                    Rights,
	"subject":                                   Subject,
	"title":                                     Title,
	"IAO_0100001":                               TermReplacedBy,
	"RO_0002161":                                NeverInTaxon,
	"RO_0002162":                                InTaxon,
	"mondo#excluded_synonym":                    ExcludedSynonym,
	"source":                                    Source,
	"homepage":                                  Homepage,
}

// DecodeMetadataPredicate looks up a metadata predicate key in the
// registry. Unrecognized keys are non-fatal: they decode to Unknown so a
// single unfamiliar annotation field never aborts the load. Callers that
// want to surface this should report it through their own warning sink.
func DecodeMetadataPredicate(key string) MetadataPredicate {
	if p, ok := metadataPredicateRegistry[key]; ok {
		return p
	}
	return Unknown
}
