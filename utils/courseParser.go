package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Course documents arrive in one of two shapes:
//
//	{"ruta_aprendizaje_crochet": [ ...levels ]}   named route key
//	{"title": "...", "description": "...", "levels": [ ...levels ]}
//
// Level fields carry Spanish or English names; each logical field has an
// ordered list of accepted aliases and the first one present wins.

var (
	ErrInvalidJSON   = errors.New("invalid JSON file")
	ErrInvalidFormat = errors.New("invalid course format, expected a route key with an array or { title, description?, levels }")
	ErrNoLevels      = errors.New("no levels found in course data")
	ErrMissingTitle  = errors.New("title is required")
)

// knownRouteTitles maps bundled route keys to their display titles.
var knownRouteTitles = map[string]string{
	"ruta_aprendizaje_ciberseguridad":        "Ruta de Aprendizaje en Ciberseguridad",
	"ruta_aprendizaje_crochet":               "Ruta de Aprendizaje en Crochet",
	"ruta_ia_en_administracion_y_contaduria": "Ruta de IA en Administración y Contaduría",
	"leverage_crypto":                        "Leverage Crypto Trading",
	"hipertrofia_fat_loss":                   "Hipertrofia y Pérdida de Grasa",
}

var (
	titleAliases     = []string{"nivel", "level", "title"}
	topicAliases     = []string{"temas", "topics"}
	objectiveAliases = []string{"objetivos", "objectives"}
	toolAliases      = []string{"herramientas", "tools"}
	resourceAliases  = []string{"recursos", "resources"}
)

// CourseLevelData is one parsed level in input order.
type CourseLevelData struct {
	Title      string
	Topics     []string
	Objectives []string
	Tools      []string
	Resources  []string
}

// CourseDocument is the canonical representation of an uploaded course.
type CourseDocument struct {
	Title       string
	Description string
	Levels      []CourseLevelData
}

// ParseCourseDocument normalizes a raw course JSON document into a
// CourseDocument. It returns ErrInvalidJSON for malformed input and a
// validation error for structurally wrong documents; nothing is persisted
// here, so a failed parse never leaves partial state.
func ParseCourseDocument(raw []byte) (*CourseDocument, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, ErrInvalidJSON
	}

	doc := &CourseDocument{}
	var rawLevels []json.RawMessage

	if _, hasTitle := root["title"]; hasTitle {
		// Explicit {title, description?, levels} shape
		if err := json.Unmarshal(root["title"], &doc.Title); err != nil {
			return nil, ErrInvalidFormat
		}
		doc.Title = strings.TrimSpace(doc.Title)
		if doc.Title == "" {
			return nil, ErrMissingTitle
		}
		if rawDesc, ok := root["description"]; ok {
			var desc string
			if err := json.Unmarshal(rawDesc, &desc); err != nil {
				return nil, ErrInvalidFormat
			}
			doc.Description = strings.TrimSpace(desc)
		}
		rawLevelsJSON, ok := root["levels"]
		if !ok {
			return nil, ErrNoLevels
		}
		if err := json.Unmarshal(rawLevelsJSON, &rawLevels); err != nil {
			return nil, ErrInvalidFormat
		}
	} else if len(root) == 1 {
		// Named route key holding the level array
		for key, value := range root {
			if err := json.Unmarshal(value, &rawLevels); err != nil {
				return nil, ErrInvalidFormat
			}
			doc.Title = routeTitle(key)
		}
		doc.Description = "Curso completo de " + strings.ToLower(doc.Title)
	} else {
		return nil, ErrInvalidFormat
	}

	if len(rawLevels) == 0 {
		return nil, ErrNoLevels
	}

	for i, rawLevel := range rawLevels {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rawLevel, &fields); err != nil {
			return nil, ErrInvalidFormat
		}

		level := CourseLevelData{
			Title:      resolveString(fields, titleAliases),
			Topics:     resolveStringList(fields, topicAliases),
			Objectives: resolveStringList(fields, objectiveAliases),
			Tools:      resolveStringList(fields, toolAliases),
			Resources:  resolveStringList(fields, resourceAliases),
		}
		if level.Title == "" {
			level.Title = fmt.Sprintf("Level %d", i+1)
		}
		doc.Levels = append(doc.Levels, level)
	}

	return doc, nil
}

// routeTitle resolves a route key to a display title, falling back to
// replacing underscores with spaces and capitalizing each word.
func routeTitle(key string) string {
	if title, ok := knownRouteTitles[key]; ok {
		return title
	}
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// resolveString returns the first non-empty value among the field aliases.
// Numeric values are accepted the way loosely-typed source documents write
// them ("nivel": 1).
func resolveString(fields map[string]json.RawMessage, aliases []string) string {
	for _, alias := range aliases {
		raw, ok := fields[alias]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s != "" {
				return s
			}
			continue
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	return ""
}

// resolveStringList returns the value of the first alias present, even when
// that value is an empty list. Absent fields default to an empty list.
func resolveStringList(fields map[string]json.RawMessage, aliases []string) []string {
	for _, alias := range aliases {
		raw, ok := fields[alias]
		if !ok {
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			continue
		}
		if list == nil {
			list = []string{}
		}
		return list
	}
	return []string{}
}
