package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCourseDocumentRouteKey(t *testing.T) {
	raw := []byte(`{"ruta_aprendizaje_crochet": [{"nivel":"1","temas":["t1"],"objetivos":[],"herramientas":[],"recursos":[]}]}`)

	doc, err := ParseCourseDocument(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Ruta de Aprendizaje en Crochet", doc.Title)
	assert.Equal(t, "Curso completo de ruta de aprendizaje en crochet", doc.Description)
	assert.Len(t, doc.Levels, 1)
	assert.Equal(t, "1", doc.Levels[0].Title)
	assert.Equal(t, []string{"t1"}, doc.Levels[0].Topics)
	assert.Empty(t, doc.Levels[0].Objectives)
	assert.Empty(t, doc.Levels[0].Tools)
	assert.Empty(t, doc.Levels[0].Resources)
}

func TestParseCourseDocumentUnknownRouteKey(t *testing.T) {
	raw := []byte(`{"machine_learning_basics": [{"title":"Intro"}]}`)

	doc, err := ParseCourseDocument(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Machine Learning Basics", doc.Title)
	assert.Equal(t, "Intro", doc.Levels[0].Title)
}

func TestParseCourseDocumentExplicitShape(t *testing.T) {
	raw := []byte(`{
		"title": "Go Basics",
		"description": "An introduction",
		"levels": [
			{"level": "Setup", "topics": ["install"], "tools": ["go"]},
			{"title": "Syntax", "objectives": ["read code"]},
			{}
		]
	}`)

	doc, err := ParseCourseDocument(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Go Basics", doc.Title)
	assert.Equal(t, "An introduction", doc.Description)
	assert.Len(t, doc.Levels, 3)

	assert.Equal(t, "Setup", doc.Levels[0].Title)
	assert.Equal(t, []string{"install"}, doc.Levels[0].Topics)
	assert.Equal(t, []string{"go"}, doc.Levels[0].Tools)

	assert.Equal(t, "Syntax", doc.Levels[1].Title)
	assert.Equal(t, []string{"read code"}, doc.Levels[1].Objectives)

	// A level with no recognizable name falls back to its 1-based position
	assert.Equal(t, "Level 3", doc.Levels[2].Title)
	assert.Equal(t, []string{}, doc.Levels[2].Topics)
}

func TestParseCourseDocumentSpanishAliasesWin(t *testing.T) {
	raw := []byte(`{
		"title": "Bilingual",
		"levels": [{"nivel":"Nivel Uno","temas":[],"topics":["ignored"]}]
	}`)

	doc, err := ParseCourseDocument(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Nivel Uno", doc.Levels[0].Title)
	// "temas" is present (even empty) so "topics" is never consulted
	assert.Equal(t, []string{}, doc.Levels[0].Topics)
}

func TestParseCourseDocumentNumericLevelName(t *testing.T) {
	raw := []byte(`{"title": "Nums", "levels": [{"nivel": 2}]}`)

	doc, err := ParseCourseDocument(raw)
	assert.NoError(t, err)
	assert.Equal(t, "2", doc.Levels[0].Title)
}

func TestParseCourseDocumentMalformedJSON(t *testing.T) {
	_, err := ParseCourseDocument([]byte(`{"title": "broken`))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestParseCourseDocumentEmptyLevels(t *testing.T) {
	_, err := ParseCourseDocument([]byte(`{"title": "Empty", "levels": []}`))
	assert.ErrorIs(t, err, ErrNoLevels)

	_, err = ParseCourseDocument([]byte(`{"title": "NoLevels"}`))
	assert.ErrorIs(t, err, ErrNoLevels)

	_, err = ParseCourseDocument([]byte(`{"some_route": []}`))
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestParseCourseDocumentInvalidFormat(t *testing.T) {
	_, err := ParseCourseDocument([]byte(`{"a": 1, "b": 2}`))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseCourseDocument([]byte(`{"route": {"not": "an array"}}`))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseCourseDocumentMissingTitle(t *testing.T) {
	_, err := ParseCourseDocument([]byte(`{"title": "  ", "levels": [{}]}`))
	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestParseCourseDocumentPreservesLevelOrder(t *testing.T) {
	raw := []byte(`{"title": "Ordered", "levels": [
		{"title": "first"}, {"title": "second"}, {"title": "third"}, {"title": "fourth"}
	]}`)

	doc, err := ParseCourseDocument(raw)
	assert.NoError(t, err)
	want := []string{"first", "second", "third", "fourth"}
	for i, level := range doc.Levels {
		assert.Equal(t, want[i], level.Title)
	}
}
