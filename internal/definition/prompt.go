package definition

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeFixed Mode = "fixed"
)

// LanguagePolicy selects the language a definition is written in.
// Auto answers in the word's own language; Fixed answers in the language
// of the country identified by Code.
type LanguagePolicy struct {
	Mode Mode   `json:"mode"`
	Code string `json:"code,omitempty"`
}

func Auto() LanguagePolicy {
	return LanguagePolicy{Mode: ModeAuto}
}

// Fixed returns a policy for the given code. The code is not validated.
func Fixed(code string) LanguagePolicy {
	return LanguagePolicy{Mode: ModeFixed, Code: strings.ToUpper(code)}
}

// Label is used in logs and lookup records, e.g. "auto" or "NL".
func (p LanguagePolicy) Label() string {
	if p.Mode == ModeFixed {
		return p.Code
	}
	return string(ModeAuto)
}

const autoPrompt = `
Given a single word, which we will represent as %[1]s, generate a JSON object containing the word, its phonetic transcription, its part of speech, a definition, and an example sentence.
If %[1]s is an English word (like "chair"), the definition must be in English. If %[1]s is a Dutch word (like "tafel"), the definition must be in Dutch.
UNDER NO CIRCUMSTANCES SHOULD YOU TRANSLATE %[1]s OR ITS DEFINITION INTO ENGLISH. The JSON object must only describe the single word %[1]s, and the language of the definition must match the language of the input word.
Set "status" to %[2]d when you describe the word and %[3]d when you cannot find it.
IF YOU ARE NOT 100%% CERTAIN ABOUT THE ACCURACY OF ANY OF THE GENERATED INFORMATION (phonetic, part of speech, definition, or example sentence), RETURN THE FOLLOWING JSON ERROR MESSAGE INSTEAD OF THE WORD DATA: {"error": "%[4]s"}
`

const fixedPrompt = `
This prompt is written in English. That must not affect your ability to respond in a different language; follow every language-related instruction in this prompt.
Respond in the language originating from the country with the country code "%[1]s".

The given word is: "%[2]s". Respond with:
- The word itself, in the language of country code "%[1]s".
- Its phonetic transcription, in the language of country code "%[1]s".
- Its part of speech, in the language of country code "%[1]s".
- A definition, in the language of country code "%[1]s".
- An example sentence, in the language of country code "%[1]s".

Do not translate the word or its definition into any other language.
Finally, set "status" to %[3]d if you found the word, or %[4]d if you could not find it.
`

// BuildPrompt embeds word (and the policy's code) verbatim into the
// instruction sent to the generation service.
func BuildPrompt(word string, policy LanguagePolicy) string {
	if policy.Mode == ModeFixed {
		return fmt.Sprintf(fixedPrompt, strings.ToUpper(policy.Code), word, StatusFound, StatusNotFound)
	}
	return fmt.Sprintf(autoPrompt, word, StatusFound, StatusNotFound, LowConfidenceMessage)
}
