package definition

// FieldType is the JSON type of a schema property.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
)

type Field struct {
	Name     string
	Type     FieldType
	Nullable bool
}

// Schema describes the JSON object the generation service must produce.
type Schema struct {
	Description string
	Fields      []Field
	Required    []string
}

// Status values the model reports in the status field.
const (
	StatusNotFound = 0
	StatusFound    = 1
)

// ResultSchema is the single contract used by every definition route.
// status is never null; the text fields may be when the model has nothing to say.
var ResultSchema = Schema{
	Description: "Word definition schema",
	Fields: []Field{
		{Name: "word", Type: TypeString, Nullable: true},
		{Name: "phonetic", Type: TypeString, Nullable: true},
		{Name: "partOfSpeech", Type: TypeString, Nullable: true},
		{Name: "definition", Type: TypeString, Nullable: true},
		{Name: "exampleSentence", Type: TypeString, Nullable: true},
		{Name: "status", Type: TypeInteger, Nullable: false},
	},
	Required: []string{"word", "partOfSpeech", "definition", "exampleSentence"},
}

// Result mirrors ResultSchema. The service relays generated text as-is,
// so this type is only used by callers that want to decode it.
type Result struct {
	Word            string `json:"word"`
	Phonetic        string `json:"phonetic,omitempty"`
	PartOfSpeech    string `json:"partOfSpeech"`
	Definition      string `json:"definition"`
	ExampleSentence string `json:"exampleSentence"`
	Status          int    `json:"status"`
}

// ErrorResult is the body of a failed lookup, either from the handler (HTTP 500)
// or returned in-band by the model when it is not confident.
type ErrorResult struct {
	Error string `json:"error"`
}

// LowConfidenceMessage is what the model is told to return when unsure.
const LowConfidenceMessage = "Unable to confidently generate information for this word."

// Field returns the named field and whether it exists.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
