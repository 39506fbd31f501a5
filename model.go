package ankigreek

import "fmt"

// NounParadigm holds the declension of one noun.
// A cell may be written once; absent numbers (often the dual) are normal.
type NounParadigm struct {
	// Citation is the dictionary headword with its article, e.g. "ὁ νοῦς".
	Citation string `json:"citation"`
	// Gender is the gender word found in the source markup ("masculine"),
	// empty when the markup did not say.
	Gender string `json:"gender,omitempty"`
	// Forms maps number → case → raw form.
	Forms map[Number]map[Case]string `json:"forms"`
}

// NominalCell is one populated cell of a NounParadigm.
type NominalCell struct {
	Number Number
	Case   Case
	Form   string
}

// NewNounParadigm creates an empty paradigm for citation.
func NewNounParadigm(citation string) *NounParadigm {
	return &NounParadigm{
		Citation: citation,
		Forms:    make(map[Number]map[Case]string),
	}
}

// Set writes form at (n, c). Writing a populated cell is a conflict,
// whatever the old and new values are.
func (p *NounParadigm) Set(n Number, c Case, form string) error {
	if !n.IsValid() {
		return fmt.Errorf("%w: number %q", ErrUnresolvable, n)
	}
	if !c.IsValid() {
		return fmt.Errorf("%w: case %q", ErrUnresolvable, c)
	}
	if p.Forms == nil {
		p.Forms = make(map[Number]map[Case]string)
	}
	row, ok := p.Forms[n]
	if !ok {
		row = make(map[Case]string)
		p.Forms[n] = row
	}
	if _, taken := row[c]; taken {
		return fmt.Errorf("%w: %s %s %s already set", ErrConflict, p.Citation, n, c)
	}
	row[c] = form
	return nil
}

// Form returns the raw form at (n, c).
func (p *NounParadigm) Form(n Number, c Case) (string, bool) {
	f, ok := p.Forms[n][c]
	return f, ok
}

// Has reports whether any cell of number n is populated.
func (p *NounParadigm) Has(n Number) bool {
	return len(p.Forms[n]) > 0
}

// Len returns the number of populated cells.
func (p *NounParadigm) Len() int {
	total := 0
	for _, row := range p.Forms {
		total += len(row)
	}
	return total
}

// Cells lists the populated cells, numbers in the given order and cases in
// Cases order.
func (p *NounParadigm) Cells(numbers []Number) []NominalCell {
	var out []NominalCell
	for _, n := range numbers {
		row := p.Forms[n]
		for _, c := range Cases {
			if f, ok := row[c]; ok {
				out = append(out, NominalCell{Number: n, Case: c, Form: f})
			}
		}
	}
	return out
}

// Validate checks every key against the closed vocabularies. Paradigms
// decoded from a store go through it before use.
func (p *NounParadigm) Validate() error {
	for n, row := range p.Forms {
		if !n.IsValid() {
			return fmt.Errorf("%s: %w: number %q", p.Citation, ErrUnresolvable, n)
		}
		for c := range row {
			if !c.IsValid() {
				return fmt.Errorf("%s: %w: case %q", p.Citation, ErrUnresolvable, c)
			}
		}
	}
	return nil
}

// GenderForms holds one participle cell for each gender, in Genders order.
type GenderForms [3]string

// Of returns the form for a tabulated gender.
func (g GenderForms) Of(gender Gender) string {
	switch gender {
	case Masculine:
		return g[0]
	case Feminine:
		return g[1]
	case Neuter:
		return g[2]
	}
	return ""
}

// participleSlots is the order in which a participle's gender triples are
// written: the cells missing from it are derived by syncretism.
var participleSlots = []struct {
	Number Number
	Case   Case
}{
	{Singular, Nominative}, {Singular, Genitive}, {Singular, Dative}, {Singular, Accusative}, {Singular, Vocative},
	{Dual, Nominative}, {Dual, Genitive},
	{Plural, Nominative}, {Plural, Genitive}, {Plural, Dative}, {Plural, Accusative},
}

// ParticipleSlotCount is the number of gender triples SetParticiple expects.
var ParticipleSlotCount = len(participleSlots)

// VerbParadigm holds the conjugation of one verb.
type VerbParadigm struct {
	// Lemma is the dictionary form, e.g. "λύω".
	Lemma string `json:"lemma"`
	// Finite maps voice → mood → tense → forms in Persons order.
	Finite map[Voice]map[Mood]map[Tense][]string `json:"finite,omitempty"`
	// Infinitive maps voice → tense → form.
	Infinitive map[Voice]map[Tense]string `json:"infinitive,omitempty"`
	// Participle maps voice → tense → number → case → gender forms.
	Participle map[Voice]map[Tense]map[Number]map[Case]GenderForms `json:"participle,omitempty"`
}

// NewVerbParadigm creates an empty paradigm for lemma.
func NewVerbParadigm(lemma string) *VerbParadigm {
	return &VerbParadigm{
		Lemma:      lemma,
		Finite:     make(map[Voice]map[Mood]map[Tense][]string),
		Infinitive: make(map[Voice]map[Tense]string),
		Participle: make(map[Voice]map[Tense]map[Number]map[Case]GenderForms),
	}
}

func (p *VerbParadigm) checkTags(v Voice, t Tense) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: voice %q", ErrUnresolvable, v)
	}
	if !t.IsValid() {
		return fmt.Errorf("%w: tense %q", ErrUnresolvable, t)
	}
	return nil
}

// SetFinite writes the eight person forms of (v, m, t). An empty form marks
// a cell that does not exist, such as the first person imperative.
func (p *VerbParadigm) SetFinite(v Voice, m Mood, t Tense, forms []string) error {
	if err := p.checkTags(v, t); err != nil {
		return err
	}
	if !m.IsFinite() {
		return fmt.Errorf("%w: %s is not a finite mood", ErrValidation, m)
	}
	if len(forms) != len(Persons) {
		return fmt.Errorf("%w: %s %s %s %s: want %d forms, got %d",
			ErrValidation, p.Lemma, v, m, t, len(Persons), len(forms))
	}
	if p.Finite == nil {
		p.Finite = make(map[Voice]map[Mood]map[Tense][]string)
	}
	moods, ok := p.Finite[v]
	if !ok {
		moods = make(map[Mood]map[Tense][]string)
		p.Finite[v] = moods
	}
	tenses, ok := moods[m]
	if !ok {
		tenses = make(map[Tense][]string)
		moods[m] = tenses
	}
	if _, taken := tenses[t]; taken {
		return fmt.Errorf("%w: %s %s %s %s already set", ErrConflict, p.Lemma, v, m, t)
	}
	tenses[t] = append([]string(nil), forms...)
	return nil
}

// SetInfinitive writes the infinitive of (v, t).
func (p *VerbParadigm) SetInfinitive(v Voice, t Tense, form string) error {
	if err := p.checkTags(v, t); err != nil {
		return err
	}
	if p.Infinitive == nil {
		p.Infinitive = make(map[Voice]map[Tense]string)
	}
	tenses, ok := p.Infinitive[v]
	if !ok {
		tenses = make(map[Tense]string)
		p.Infinitive[v] = tenses
	}
	if _, taken := tenses[t]; taken {
		return fmt.Errorf("%w: %s %s infinitive %s already set", ErrConflict, p.Lemma, v, t)
	}
	tenses[t] = form
	return nil
}

// SetParticiple distributes eleven gender triples over the participle grid
// of (v, t) and fills the remaining cells:
//
//	Dual Vocative = Dual Accusative = Dual Nominative
//	Dual Dative = Dual Genitive
//	Plural Vocative = Plural Nominative
func (p *VerbParadigm) SetParticiple(v Voice, t Tense, triples []GenderForms) error {
	if err := p.checkTags(v, t); err != nil {
		return err
	}
	if len(triples) != len(participleSlots) {
		return fmt.Errorf("%w: %s %s participle %s: want %d gender triples, got %d",
			ErrValidation, p.Lemma, v, t, len(participleSlots), len(triples))
	}
	if p.Participle == nil {
		p.Participle = make(map[Voice]map[Tense]map[Number]map[Case]GenderForms)
	}
	tenses, ok := p.Participle[v]
	if !ok {
		tenses = make(map[Tense]map[Number]map[Case]GenderForms)
		p.Participle[v] = tenses
	}
	if _, taken := tenses[t]; taken {
		return fmt.Errorf("%w: %s %s participle %s already set", ErrConflict, p.Lemma, v, t)
	}

	grid := make(map[Number]map[Case]GenderForms, len(Numbers))
	for _, n := range Numbers {
		grid[n] = make(map[Case]GenderForms, len(Cases))
	}
	for i, slot := range participleSlots {
		grid[slot.Number][slot.Case] = triples[i]
	}
	dual := grid[Dual]
	dual[Vocative] = dual[Nominative]
	dual[Accusative] = dual[Nominative]
	dual[Dative] = dual[Genitive]
	grid[Plural][Vocative] = grid[Plural][Nominative]

	tenses[t] = grid
	return nil
}

// FiniteForms returns the person forms of (v, m, t).
func (p *VerbParadigm) FiniteForms(v Voice, m Mood, t Tense) ([]string, bool) {
	forms, ok := p.Finite[v][m][t]
	return forms, ok
}

// InfinitiveForm returns the infinitive of (v, t).
func (p *VerbParadigm) InfinitiveForm(v Voice, t Tense) (string, bool) {
	form, ok := p.Infinitive[v][t]
	return form, ok
}

// ParticipleGrid returns the full participle grid of (v, t).
func (p *VerbParadigm) ParticipleGrid(v Voice, t Tense) (map[Number]map[Case]GenderForms, bool) {
	grid, ok := p.Participle[v][t]
	return grid, ok
}

// Validate checks every key against the closed vocabularies.
func (p *VerbParadigm) Validate() error {
	bad := func(what string, tag any) error {
		return fmt.Errorf("%s: %w: %s %q", p.Lemma, ErrUnresolvable, what, tag)
	}
	for v, moods := range p.Finite {
		if !v.IsValid() {
			return bad("voice", v)
		}
		for m, tenses := range moods {
			if !m.IsFinite() {
				return bad("mood", m)
			}
			for t, forms := range tenses {
				if !t.IsValid() {
					return bad("tense", t)
				}
				if len(forms) != len(Persons) {
					return fmt.Errorf("%s: %w: %s %s %s has %d forms",
						p.Lemma, ErrValidation, v, m, t, len(forms))
				}
			}
		}
	}
	for v, tenses := range p.Infinitive {
		if !v.IsValid() {
			return bad("voice", v)
		}
		for t := range tenses {
			if !t.IsValid() {
				return bad("tense", t)
			}
		}
	}
	for v, tenses := range p.Participle {
		if !v.IsValid() {
			return bad("voice", v)
		}
		for t, grid := range tenses {
			if !t.IsValid() {
				return bad("tense", t)
			}
			for n, row := range grid {
				if !n.IsValid() {
					return bad("number", n)
				}
				for c := range row {
					if !c.IsValid() {
						return bad("case", c)
					}
				}
			}
		}
	}
	return nil
}
