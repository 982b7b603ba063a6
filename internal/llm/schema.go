package llm

import (
	"go-lexicon/internal/definition"

	"google.golang.org/genai"
)

var schemaTypes = map[definition.FieldType]genai.Type{
	definition.TypeString:  genai.TypeString,
	definition.TypeInteger: genai.TypeInteger,
}

// ToGenAISchema converts a definition schema into the SDK's OBJECT schema.
// Property ordering follows the declared field order.
func ToGenAISchema(s definition.Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	order := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		t, ok := schemaTypes[f.Type]
		if !ok {
			t = genai.TypeString
		}
		props[f.Name] = &genai.Schema{
			Type:     t,
			Nullable: genai.Ptr(f.Nullable),
		}
		order = append(order, f.Name)
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Description:      s.Description,
		Properties:       props,
		PropertyOrdering: order,
		Required:         append([]string(nil), s.Required...),
	}
}
