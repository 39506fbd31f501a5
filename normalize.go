package ankigreek

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NFC returns s in canonical composed form. Hand-typed data mixes
// precomposed letters with combining macrons and accents; card text is
// compared by exact equality, so everything passes through here first.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// collapseSpace trims s and folds every run of white space into one blank.
func collapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// normalizeLabel lowercases a grammatical label and folds its spacing.
func normalizeLabel(s string) string {
	return strings.ToLower(collapseSpace(s))
}

// equalFoldTrim compares two labels ignoring case and surrounding space.
func equalFoldTrim(a, b string) bool {
	return normalizeLabel(a) == normalizeLabel(b)
}

// inflectedArticles are the article forms Wiktionary occasionally prints in
// front of a declined form ("τοῦ νοῦ", "ἡ χώρα"): every entry of the
// article table and the doubled article of each common-gender cell.
var inflectedArticles = func() map[string]bool {
	set := make(map[string]bool)
	for _, byNumber := range articles {
		for _, byCase := range byNumber {
			for _, a := range byCase {
				set[a] = true
			}
		}
	}
	for _, n := range Numbers {
		for _, c := range Cases {
			if a, err := Article(Common, n, c); err == nil {
				set[a] = true
			}
		}
	}
	return set
}()

// stripArticle removes a leading article token from each " / " separated
// alternative of form. An article standing alone is kept.
func stripArticle(form string) string {
	alts := strings.Split(form, alternativeSep)
	for i, alt := range alts {
		fields := strings.Fields(alt)
		if len(fields) > 1 && inflectedArticles[fields[0]] {
			alts[i] = strings.Join(fields[1:], " ")
		}
	}
	return strings.Join(alts, alternativeSep)
}

// Headword returns the last token of a citation: "ὁ νοῦς" → "νοῦς".
// Wiktionary pages are titled by it.
func Headword(citation string) string {
	fields := strings.Fields(NFC(citation))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// CitationKey is the form under which a citation or lemma is looked up.
func CitationKey(s string) string {
	return collapseSpace(NFC(s))
}
