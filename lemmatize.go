package ankigreek

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// reWord matches a single Greek word token, combining marks included.
var reWord = regexp.MustCompile(`[\p{Greek}\p{Mn}]+`)

// reSentenceEnd matches the punctuation that closes a Greek sentence once
// the text is in NFC: the full stop, the question mark and the raised dot.
var reSentenceEnd = regexp.MustCompile(`[.;!\x{00B7}]`)

// Bare strips accents, breathings, iota subscripts and length marks from s
// and lowercases it: "Ἀθῆναι" → "αθηναι".
func Bare(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Lemmatizer finds the paradigm cells a form belongs to. It is built once
// from a lexicon and is safe for concurrent use.
type Lemmatizer struct {
	forms map[string][]Analysis
	bare  map[string][]Analysis
}

// NewLemmatizer indexes every form of every paradigm of lx.
func NewLemmatizer(lx *Lexicon) *Lemmatizer {
	l := &Lemmatizer{
		forms: make(map[string][]Analysis),
		bare:  make(map[string][]Analysis),
	}
	for _, key := range sortedKeys(lx.nouns) {
		l.addNoun(lx.nouns[key])
	}
	for _, key := range sortedKeys(lx.verbs) {
		l.addVerb(lx.verbs[key])
	}
	return l
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (l *Lemmatizer) add(forms []string, a Analysis) {
	for _, f := range forms {
		a.Form = f
		l.forms[f] = append(l.forms[f], a)
		b := Bare(f)
		l.bare[b] = append(l.bare[b], a)
	}
}

func (l *Lemmatizer) addNoun(p *NounParadigm) {
	for _, cell := range p.Cells(Numbers) {
		l.add(ExpandNominal(cell.Form), Analysis{
			Headword:    p.Citation,
			Kind:        KindNoun,
			Description: strings.ToLower(fmt.Sprintf("%s %s", cell.Case, cell.Number)),
		})
	}
}

var genderWords = map[Gender]string{
	Masculine: "masculine",
	Feminine:  "feminine",
	Neuter:    "neuter",
}

func (l *Lemmatizer) addVerb(p *VerbParadigm) {
	verb := func(desc ...any) Analysis {
		return Analysis{Headword: p.Lemma, Kind: KindVerb, Description: strings.TrimSpace(fmt.Sprintln(desc...))}
	}
	for _, v := range Voices {
		for _, t := range Tenses {
			for _, m := range Moods {
				forms, ok := p.FiniteForms(v, m, t)
				if !ok {
					continue
				}
				for i, person := range Persons {
					l.add(ExpandVerbal(forms[i]), verb(v, m, t, person))
				}
			}
			if form, ok := p.InfinitiveForm(v, t); ok {
				l.add(ExpandVerbal(form), verb(v, Infinitive, t))
			}
			grid, ok := p.ParticipleGrid(v, t)
			if !ok {
				continue
			}
			for _, n := range Numbers {
				for _, c := range participleCases {
					triple, ok := grid[n][c]
					if !ok {
						continue
					}
					for _, g := range Genders {
						desc := strings.ToLower(fmt.Sprintf("%s %s", c, n))
						l.add(ExpandVerbal(triple.Of(g)), verb(v, Participle, t, genderWords[g], desc))
					}
				}
			}
		}
	}
}

// Lemmatize returns the readings of a single form. An exact match wins;
// otherwise the capitalized form is tried (proper nouns), then the form
// without diacritics.
func (l *Lemmatizer) Lemmatize(form string) []Analysis {
	return l.lemmatize(NFC(strings.TrimSpace(form)), false)
}

func (l *Lemmatizer) lemmatize(form string, sentenceStart bool) []Analysis {
	if form == "" {
		return nil
	}
	out := append([]Analysis(nil), l.forms[form]...)

	first, size := utf8.DecodeRuneInString(form)
	switch {
	case sentenceStart && unicode.IsUpper(first):
		out = append(out, l.forms[string(unicode.ToLower(first))+form[size:]]...)
	case len(out) == 0 && unicode.IsLower(first):
		out = append(out, l.forms[string(unicode.ToUpper(first))+form[size:]]...)
	}
	if len(out) == 0 {
		out = append(out, l.bare[Bare(form)]...)
	}
	return uniqueAnalyses(out)
}

func uniqueAnalyses(as []Analysis) []Analysis {
	seen := make(map[Analysis]bool, len(as))
	var out []Analysis
	for _, a := range as {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

// LemmatizeText tokenizes text and lemmatizes each Greek word. A token
// opening a sentence is also looked up in lower case.
func (l *Lemmatizer) LemmatizeText(text string) []LemmatizationResult {
	text = NFC(text)
	var results []LemmatizationResult
	prev := 0
	for i, loc := range reWord.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		start := i == 0 || reSentenceEnd.MatchString(text[prev:loc[0]])
		results = append(results, LemmatizationResult{
			Token:    token,
			Analyses: l.lemmatize(token, start),
		})
		prev = loc[1]
	}
	return results
}
