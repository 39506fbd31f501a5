package ankigreek

import (
	"fmt"
	"strings"
)

// articles is the definite article by gender, number and case.
// The singular vocative slot holds the interjection used with it.
var articles = map[Gender]map[Number]map[Case]string{
	Masculine: {
		Singular: {Nominative: "ὁ", Genitive: "τοῦ", Dative: "τῷ", Accusative: "τὸν", Vocative: "ῶ"},
		Dual:     {Nominative: "τὼ", Genitive: "τοῖν", Dative: "τοῖν", Accusative: "τὼ", Vocative: "τὼ"},
		Plural:   {Nominative: "οἱ", Genitive: "τῶν", Dative: "τοῖς", Accusative: "τοὺς", Vocative: "οἱ"},
	},
	Feminine: {
		Singular: {Nominative: "ἡ", Genitive: "τῆς", Dative: "τῇ", Accusative: "τὴν", Vocative: "ῶ"},
		Dual:     {Nominative: "τὼ", Genitive: "τοῖν", Dative: "τοῖν", Accusative: "τὼ", Vocative: "τὼ"},
		Plural:   {Nominative: "αἱ", Genitive: "τῶν", Dative: "ταῖς", Accusative: "τὰς", Vocative: "αἱ"},
	},
	Neuter: {
		Singular: {Nominative: "τὸ", Genitive: "τοῦ", Dative: "τῷ", Accusative: "τὸ", Vocative: "ῶ"},
		Dual:     {Nominative: "τὼ", Genitive: "τοῖν", Dative: "τοῖν", Accusative: "τὼ", Vocative: "τὼ"},
		Plural:   {Nominative: "τὰ", Genitive: "τῶν", Dative: "τοῖς", Accusative: "τὰ", Vocative: "τὰ"},
	},
}

// Article returns the definite article agreeing with (g, n, c). For a noun
// of common gender it returns the masculine and feminine articles joined by
// "/", e.g. "τὸν/τὴν".
func Article(g Gender, n Number, c Case) (string, error) {
	if g == Common {
		m, err := Article(Masculine, n, c)
		if err != nil {
			return "", err
		}
		f, err := Article(Feminine, n, c)
		if err != nil {
			return "", err
		}
		return m + "/" + f, nil
	}
	a, ok := articles[g][n][c]
	if !ok {
		return "", fmt.Errorf("%w: no article for %s %s %s", ErrUnresolvable, g, n, c)
	}
	return a, nil
}

// citationArticles maps the article a citation form starts with to the
// gender of the noun.
var citationArticles = map[string]Gender{
	"ὁ":   Masculine,
	"ἡ":   Feminine,
	"τὸ":  Neuter,
	"ὁ/ἡ": Common,
}

// GenderOf decides the gender of a noun. The article of the citation form
// wins; the gender word extracted from markup is the fallback.
func GenderOf(citation, extracted string) (Gender, error) {
	fields := strings.Fields(NFC(citation))
	if len(fields) > 1 {
		if g, ok := citationArticles[fields[0]]; ok {
			return g, nil
		}
	}
	if extracted != "" {
		if g, err := ParseGender(extracted); err == nil {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: no article or gender for %q", ErrUnresolvable, citation)
}

// nominativeLike are articles whose non-nominative cells repeat the
// nominative form of the noun.
var nominativeLike = map[string]bool{
	"τὼ": true, "τὸ": true, "τὰ": true, "οἱ": true, "αἱ": true,
}

// dualObliqueArticle is shared by the dual genitive and dative.
const dualObliqueArticle = "τοῖν"

// SuppressReverse reports whether the reverse card of a cell would only
// repeat another one. The decision looks at the resolved article text: a
// nominative-like article keeps only its nominative cell, the dual oblique
// article keeps only its genitive cell. A doubled article is judged by its
// masculine half.
func SuppressReverse(article string, c Case) bool {
	first, _, _ := strings.Cut(article, "/")
	if nominativeLike[first] && c != Nominative {
		return true
	}
	if first == dualObliqueArticle && c != Genitive {
		return true
	}
	return false
}
