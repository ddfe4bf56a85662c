package parser

import (
	"regexp"

	"github.com/go-enry/go-enry/v2"
)

// Linguist names of the supported languages
const (
	csharpLanguage = "C#"
	vbLanguage     = "Visual Basic .NET"
)

var (
	vbEndEnumPattern  = regexp.MustCompile(`(?im)^\s*end\s+enum\b`)
	csharpEnumPattern = regexp.MustCompile(`\benum\s+[\p{L}_][\p{L}\p{N}_]*\s*(?::\s*[\w.]+\s*)?\{`)
)

// DetectDialect picks the dialect of an enumeration source. The file
// extension wins when it is unambiguous, then an End Enum statement marks
// Visual Basic and a braced enum body marks C#, then the enry classifier
// decides between the two languages.
// C# is the fallback.
func DetectDialect(filename string, text string) Dialect {
	if filename != "" && filename != "-" {
		if d, ok := dialectOf(enry.GetLanguagesByExtension(filename, nil, nil)); ok {
			return d
		}
	}

	if vbEndEnumPattern.MatchString(text) {
		return VB
	}
	if csharpEnumPattern.MatchString(text) {
		return CSharp
	}

	if text != "" {
		lang, _ := enry.GetLanguageByClassifier([]byte(text), []string{csharpLanguage, vbLanguage})
		if d, ok := dialectOf([]string{lang}); ok {
			return d
		}
	}
	return CSharp
}

// dialectOf maps linguist candidates to a dialect when exactly one supported language is present
func dialectOf(languages []string) (Dialect, bool) {
	var hasCSharp, hasVB bool
	for _, lang := range languages {
		switch lang {
		case csharpLanguage:
			hasCSharp = true
		case vbLanguage:
			hasVB = true
		}
	}
	switch {
	case hasCSharp && !hasVB:
		return CSharp, true
	case hasVB && !hasCSharp:
		return VB, true
	default:
		return "", false
	}
}
