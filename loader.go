package ankigreek

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed data/*.txt
var embedded embed.FS

// Lexicon holds the hand-authored paradigms and the default word lists.
// Hand-authored entries take precedence over stored and fetched ones.
type Lexicon struct {
	nouns map[string]*NounParadigm
	verbs map[string]*VerbParadigm
	lists map[string][]string
}

// DefaultLexicon loads the lexicon shipped with the package.
func DefaultLexicon() (*Lexicon, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadLexicon(sub)
}

// LoadLexicon reads nouns.txt, verbs.txt and wordlists.txt from fsys.
// Lines starting with "!" are comments.
func LoadLexicon(fsys fs.FS) (*Lexicon, error) {
	lx := &Lexicon{
		nouns: make(map[string]*NounParadigm),
		verbs: make(map[string]*VerbParadigm),
		lists: make(map[string][]string),
	}
	if err := readLines(fsys, "nouns.txt", lx.nounLine()); err != nil {
		return nil, err
	}
	if err := readLines(fsys, "verbs.txt", lx.verbLine()); err != nil {
		return nil, err
	}
	if err := readLines(fsys, "wordlists.txt", lx.listLine); err != nil {
		return nil, err
	}
	return lx, nil
}

// readLines feeds every non-blank, non-comment line of name to fn and
// prefixes its errors with the position.
func readLines(fsys fs.FS, name string, fn func(line string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(NFC(sc.Text()))
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// nounLine parses "noun:<citation>" headers and "<Number>:<Case>:<form>"
// cells of the current block.
func (lx *Lexicon) nounLine() func(string) error {
	var cur *NounParadigm
	return func(line string) error {
		eclats := strings.SplitN(line, ":", 3)
		if eclats[0] == "noun" && len(eclats) == 2 {
			citation := CitationKey(eclats[1])
			if _, dup := lx.nouns[citation]; dup {
				return fmt.Errorf("%w: noun %s defined twice", ErrConflict, citation)
			}
			cur = NewNounParadigm(citation)
			lx.nouns[citation] = cur
			return nil
		}
		if cur == nil {
			return fmt.Errorf("%w: cell outside a noun block", ErrValidation)
		}
		if len(eclats) != 3 {
			return fmt.Errorf("%w: want Number:Case:form, got %q", ErrValidation, line)
		}
		n, err := ParseNumber(eclats[0])
		if err != nil {
			return err
		}
		c, err := ParseCase(eclats[1])
		if err != nil {
			return err
		}
		return cur.Set(n, c, strings.TrimSpace(eclats[2]))
	}
}

// verbLine parses "verb:<lemma>" headers and "<voice>:<mood>:<tense>:<forms>"
// lines of the current block.
func (lx *Lexicon) verbLine() func(string) error {
	var cur *VerbParadigm
	return func(line string) error {
		eclats := strings.SplitN(line, ":", 4)
		if eclats[0] == "verb" && len(eclats) == 2 {
			lemma := CitationKey(eclats[1])
			if _, dup := lx.verbs[lemma]; dup {
				return fmt.Errorf("%w: verb %s defined twice", ErrConflict, lemma)
			}
			cur = NewVerbParadigm(lemma)
			lx.verbs[lemma] = cur
			return nil
		}
		if cur == nil {
			return fmt.Errorf("%w: line outside a verb block", ErrValidation)
		}
		if len(eclats) != 4 {
			return fmt.Errorf("%w: want voice:mood:tense:forms, got %q", ErrValidation, line)
		}
		v, err := ParseVoice(eclats[0])
		if err != nil {
			return err
		}
		m, err := ParseMood(eclats[1])
		if err != nil {
			return err
		}
		t, err := ParseTense(eclats[2])
		if err != nil {
			return err
		}
		switch m {
		case Infinitive:
			return cur.SetInfinitive(v, t, strings.TrimSpace(eclats[3]))
		case Participle:
			triples, err := parseTriples(eclats[3])
			if err != nil {
				return err
			}
			return cur.SetParticiple(v, t, triples)
		}
		return cur.SetFinite(v, m, t, splitForms(eclats[3], ";"))
	}
}

// parseTriples reads "m|f|n;m|f|n;..." participle data.
func parseTriples(s string) ([]GenderForms, error) {
	var out []GenderForms
	for _, slot := range strings.Split(s, ";") {
		forms := splitForms(slot, "|")
		if len(forms) != len(Genders) {
			return nil, fmt.Errorf("%w: participle slot %q: want %d genders", ErrValidation, slot, len(Genders))
		}
		out = append(out, GenderForms{forms[0], forms[1], forms[2]})
	}
	return out, nil
}

func splitForms(s, sep string) []string {
	forms := strings.Split(s, sep)
	for i := range forms {
		forms[i] = strings.TrimSpace(forms[i])
	}
	return forms
}

// listLine parses "list:<name>:<word>,<word>,...".
func (lx *Lexicon) listLine(line string) error {
	eclats := strings.SplitN(line, ":", 3)
	if eclats[0] != "list" || len(eclats) != 3 {
		return fmt.Errorf("%w: want list:name:words, got %q", ErrValidation, line)
	}
	name := strings.TrimSpace(eclats[1])
	for _, w := range strings.Split(eclats[2], ",") {
		if w = collapseSpace(w); w != "" {
			lx.lists[name] = append(lx.lists[name], w)
		}
	}
	return nil
}

// Noun returns the hand-authored paradigm of citation.
func (lx *Lexicon) Noun(citation string) (*NounParadigm, bool) {
	p, ok := lx.nouns[CitationKey(citation)]
	return p, ok
}

// Verb returns the hand-authored paradigm of lemma.
func (lx *Lexicon) Verb(lemma string) (*VerbParadigm, bool) {
	p, ok := lx.verbs[CitationKey(lemma)]
	return p, ok
}

// List returns the words of a default word list.
func (lx *Lexicon) List(name string) ([]string, bool) {
	words, ok := lx.lists[name]
	return append([]string(nil), words...), ok
}

// ListNames returns the names of the word lists, sorted.
func (lx *Lexicon) ListNames() []string {
	names := make([]string, 0, len(lx.lists))
	for name := range lx.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Words concatenates the named word lists, dropping repeated words.
func (lx *Lexicon) Words(names ...string) ([]string, error) {
	var out []string
	for _, name := range names {
		words, ok := lx.lists[name]
		if !ok {
			return nil, fmt.Errorf("word list %q: %w", name, ErrNotFound)
		}
		out = append(out, words...)
	}
	return unique(out), nil
}
