package i18n

import "strings"

// Translator retrieves localized messages for error codes. data provides
// optional values to embed in the message (for example, "value" or
// "expected"); templates reference them as {value}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "invalid_url":
			return "URLが不正です"
		case "no_alternative":
			return "解析できない値です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return expand("Value {value} is not {expected}", data)
		case "invalid_url":
			return expand(`Invalid URL "{value}"`, data)
		case "no_alternative":
			return "Unexpected data"
		}
	}
	return code
}

// expand substitutes {key} placeholders from data into the template.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	out := tmpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
