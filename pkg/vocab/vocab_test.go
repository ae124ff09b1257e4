package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEdgeTypeKnown(t *testing.T) {
	et, err := DecodeEdgeType("is_a")
	require.NoError(t, err)
	assert.Equal(t, IsA, et)
	assert.Equal(t, "IS_A", et.String())

	et2, err := DecodeEdgeType("RO_0004029")
	require.NoError(t, err)
	assert.Equal(t, DiseaseHasFeature, et2)
}

func TestDecodeEdgeTypeUnknown(t *testing.T) {
	_, err := DecodeEdgeType("not_a_real_predicate")
	require.Error(t, err)
	var upe *UnknownPredicateError
	assert.ErrorAs(t, err, &upe)
}

func TestDecodeMetadataPredicateKnown(t *testing.T) {
	assert.Equal(t, CreatedBy, DecodeMetadataPredicate("oboInOwl#created_by"))
	assert.Equal(t, Date, DecodeMetadataPredicate("date"))
	assert.Equal(t, TermReplacedBy, DecodeMetadataPredicate("IAO_0100001"))
	assert.Equal(t, NeverInTaxon, DecodeMetadataPredicate("RO_0002161"))
	assert.Equal(t, InTaxon, DecodeMetadataPredicate("RO_0002162"))

	// These use the "core#"/"mondo#"/"owl#" namespace fragment finalSegment
	// actually produces for the real IRIs these predicates appear under,
	// not the "skos#"/bare-word forms a naive guess would use.
	assert.Equal(t, ExactMatch, DecodeMetadataPredicate("core#exactMatch"))
	assert.Equal(t, CloseMatch, DecodeMetadataPredicate("core#closeMatch"))
	assert.Equal(t, BroadMatch, DecodeMetadataPredicate("core#broadMatch"))
	assert.Equal(t, NarrowMatch, DecodeMetadataPredicate("core#narrowMatch"))
	assert.Equal(t, IsClassLevel, DecodeMetadataPredicate("oboInOwl#is_class_level"))
	assert.Equal(t, IsAnonymous, DecodeMetadataPredicate("oboInOwl#is_anonymous"))
	assert.Equal(t, Consider, DecodeMetadataPredicate("oboInOwl#consider"))
	assert.Equal(t, EditorNotes, DecodeMetadataPredicate("hsapdv#editor_notes"))
	assert.Equal(t, LogicalDefinitionViewRelation, DecodeMetadataPredicate("oboInOwl#logical-definition-view-relation"))
	assert.Equal(t, SavedBy, DecodeMetadataPredicate("oboInOwl#saved-by"))
	assert.Equal(t, DefaultNamespace, DecodeMetadataPredicate("oboInOwl#default-namespace"))
	assert.Equal(t, HasOboFormatVersion, DecodeMetadataPredicate("oboInOwl#hasOBOFormatVersion"))
	assert.Equal(t, Related, DecodeMetadataPredicate("mondo#related"))
	assert.Equal(t, ExcludedSubclassOf, DecodeMetadataPredicate("mondo#excluded_subClassOf"))
	assert.Equal(t, Pathogenesis, DecodeMetadataPredicate("mondo#pathogenesis"))
	assert.Equal(t, ExcludedSynonym, DecodeMetadataPredicate("mondo#excluded_synonym"))
	assert.Equal(t, OwlDeprecated, DecodeMetadataPredicate("owl#deprecated"))
}

func TestDecodeMetadataPredicateUnknownIsNonFatal(t *testing.T) {
	p := DecodeMetadataPredicate("some_future_field_nobody_registered")
	assert.Equal(t, Unknown, p)
}
