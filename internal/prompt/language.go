package prompt

import (
	"strings"

	"github.com/makeasinger/briefgen/internal/model"
)

const otherLanguageLabel = "Outro"

var languageLabels = map[model.Language]string{
	model.LanguagePTBR: "Português (Brasil)",
	model.LanguagePTPT: "Português (Portugal)",
	model.LanguageEN:   "Inglês",
	model.LanguageES:   "Espanhol",
	model.LanguageMix:  "Misto (PT + EN)",
}

// LanguageLabel resolves the human label of the language selector. A custom
// override wins for "outro"/"other"; unknown values are echoed back.
func LanguageLabel(lang model.Language, override string) string {
	if label, ok := languageLabels[lang]; ok {
		return label
	}
	raw := strings.TrimSpace(string(lang))
	if raw == "" || strings.EqualFold(raw, string(model.LanguageOther)) || strings.EqualFold(raw, "other") {
		if override != "" {
			return override
		}
		return otherLanguageLabel
	}
	return raw
}
