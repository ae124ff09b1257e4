package oboparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnrobinson/phenotools/pkg/vocab"
)

const fixtureDoc = `{
  "graphs": [
    {
      "id": "http://purl.obolibrary.org/obo/hp.owl",
      "meta": {
        "basicPropertyValues": [
          {"pred": "http://purl.org/dc/elements/1.1/title", "val": "Human Phenotype Ontology"}
        ]
      },
      "nodes": [
        {
          "id": "http://purl.obolibrary.org/obo/HP_0000001",
          "type": "CLASS",
          "lbl": "All",
          "meta": {
            "definition": {"val": "root of all terms", "xrefs": ["HPO:curators"]},
            "synonyms": [{"pred": "http://purl.obolibrary.org/obo/hasExactSynonym", "val": "Root"}]
          }
        },
        {
          "id": "http://purl.obolibrary.org/obo/HP_0000118",
          "type": "CLASS",
          "lbl": "Phenotypic abnormality",
          "meta": {
            "basicPropertyValues": [
              {"pred": "http://www.geneontology.org/formats/oboInOwl#hasAlternativeId", "val": "HP:9999999"}
            ]
          }
        },
        {
          "id": "http://purl.obolibrary.org/obo/HP_0000924",
          "type": "CLASS",
          "lbl": "Abnormality of the skeletal system",
          "meta": {"deprecated": true}
        },
        {"id": "http://purl.obolibrary.org/obo/HP_0000001_DEF", "type": "PROPERTY", "lbl": "ignored"}
      ],
      "edges": [
        {"sub": "http://purl.obolibrary.org/obo/HP_0000118", "pred": "is_a", "obj": "http://purl.obolibrary.org/obo/HP_0000001"}
      ]
    }
  ]
}`

func TestLoadFixtureDocument(t *testing.T) {
	res, err := Load(strings.NewReader(fixtureDoc))
	require.NoError(t, err)
	assert.Len(t, res.Terms, 3) // PROPERTY node skipped
	assert.Len(t, res.Edges, 1)
	require.Len(t, res.Properties, 1)
	assert.Equal(t, "Human Phenotype Ontology", res.Properties[0].Value)

	assert.Equal(t, vocab.IsA, res.Edges[0].Predicate)
}

func TestLoadMissingGraphs(t *testing.T) {
	_, err := Load(strings.NewReader(`{}`))
	require.Error(t, err)
	var mde *MalformedDocumentError
	assert.ErrorAs(t, err, &mde)
}

func TestLoadInvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`not json at all`))
	require.Error(t, err)
	var mde *MalformedDocumentError
	assert.ErrorAs(t, err, &mde)
}

func TestLoadUnknownEdgePredicateAborts(t *testing.T) {
	doc := `{"graphs":[{"nodes":[
		{"id":"http://purl.obolibrary.org/obo/HP_0000001","type":"CLASS","lbl":"A"},
		{"id":"http://purl.obolibrary.org/obo/HP_0000002","type":"CLASS","lbl":"B"}
	],"edges":[
		{"sub":"http://purl.obolibrary.org/obo/HP_0000002","pred":"not_a_real_predicate","obj":"http://purl.obolibrary.org/obo/HP_0000001"}
	]}]}`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	var upe *UnknownPredicateError
	assert.ErrorAs(t, err, &upe)
}

func TestLoadDeprecatedTermMarkedObsolete(t *testing.T) {
	res, err := Load(strings.NewReader(fixtureDoc))
	require.NoError(t, err)
	var found bool
	for _, term := range res.Terms {
		if term.Label == "Abnormality of the skeletal system" {
			found = true
			assert.True(t, term.Obsolete)
		}
	}
	assert.True(t, found)
}
