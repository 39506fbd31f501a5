package ankigreek

import (
	"fmt"
	"strings"
)

// nounNumbers is the order in which a noun's cells are carded.
var nounNumbers = []Number{Singular, Plural, Dual}

// participleCases is the order in which participle cells are carded.
var participleCases = []Case{Nominative, Vocative, Genitive, Dative, Accusative}

// blank stands for the form asked for on a reverse noun card.
const blank = "________"

// AddNoun cards every populated cell of p.
//
// A forward card shows a form and answers with every article the form takes
// in this paradigm, then the citation form. A reverse card shows the
// citation form and one article, and answers with the matching forms;
// cells whose article would only repeat another reverse card are skipped
// (see SuppressReverse).
func (d *Deck) AddNoun(p *NounParadigm) error {
	gender, err := GenderOf(p.Citation, p.Gender)
	if err != nil {
		return err
	}
	citation := collapseSpace(NFC(p.Citation))

	var fronts []string
	var reverse []card
	articlesOf := make(map[string][]string)
	for _, cell := range p.Cells(nounNumbers) {
		forms := ExpandNominal(cell.Form)
		if len(forms) == 0 {
			continue
		}
		art, err := Article(gender, cell.Number, cell.Case)
		if err != nil {
			return err
		}
		for _, f := range forms {
			if _, ok := articlesOf[f]; !ok {
				fronts = append(fronts, f)
			}
			articlesOf[f] = unique(append(articlesOf[f], art))
		}
		if SuppressReverse(art, cell.Case) {
			continue
		}
		prompt := citation + lineBreak + art + " " + blank
		for _, f := range forms {
			reverse = append(reverse, card{prompt, art + " " + f})
		}
	}

	for _, c := range reverse {
		d.Reverse.Add(c.front, c.back)
	}
	for _, f := range fronts {
		answers := make([]string, 0, len(articlesOf[f]))
		for _, art := range articlesOf[f] {
			answers = append(answers, art+" "+f)
		}
		d.Forward.Add(f, strings.Join(answers, lineBreak)+lineBreak+lineBreak+citation)
	}
	return nil
}

// AddVerb cards the forms of p in the given tenses; nil means every tense.
// The paradigm and the tenses are checked before anything is added.
func (d *Deck) AddVerb(p *VerbParadigm, tenses []Tense) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if tenses == nil {
		tenses = Tenses
	}
	for _, t := range tenses {
		if !t.IsValid() {
			return fmt.Errorf("%w: tense %q", ErrUnresolvable, t)
		}
	}

	var cards []card
	for _, v := range Voices {
		for _, m := range Moods {
			for _, t := range tenses {
				var err error
				switch m {
				case Participle:
					cards, err = participleCards(cards, p, v, t)
				case Infinitive:
					cards, err = infinitiveCards(cards, p, v, t)
				default:
					cards, err = finiteCards(cards, p, v, m, t)
				}
				if err != nil {
					return err
				}
			}
		}
	}
	for _, c := range cards {
		d.add(c.front, c.back)
	}
	return nil
}

type card struct {
	front, back string
}

func finiteCards(cards []card, p *VerbParadigm, v Voice, m Mood, t Tense) ([]card, error) {
	forms, ok := p.FiniteForms(v, m, t)
	if !ok {
		return cards, nil
	}
	for i, person := range Persons {
		fronts := ExpandVerbal(forms[i])
		if len(fronts) == 0 {
			continue
		}
		label, err := VerbLabel(v, m, t, person)
		if err != nil {
			return nil, err
		}
		for _, f := range fronts {
			cards = append(cards, card{f, label})
		}
	}
	return cards, nil
}

func infinitiveCards(cards []card, p *VerbParadigm, v Voice, t Tense) ([]card, error) {
	form, ok := p.InfinitiveForm(v, t)
	if !ok {
		return cards, nil
	}
	fronts := ExpandVerbal(form)
	if len(fronts) == 0 {
		return cards, nil
	}
	label, err := VerbLabel(v, Infinitive, t, "")
	if err != nil {
		return nil, err
	}
	for _, f := range fronts {
		cards = append(cards, card{f, label})
	}
	return cards, nil
}

func participleCards(cards []card, p *VerbParadigm, v Voice, t Tense) ([]card, error) {
	grid, ok := p.ParticipleGrid(v, t)
	if !ok {
		return cards, nil
	}
	for _, n := range Numbers {
		for _, c := range participleCases {
			triple, ok := grid[n][c]
			if !ok {
				continue
			}
			for _, g := range Genders {
				fronts := ExpandVerbal(triple.Of(g))
				if len(fronts) == 0 {
					continue
				}
				label, err := ParticipleLabel(v, t, g, n, c)
				if err != nil {
					return nil, err
				}
				for _, f := range fronts {
					cards = append(cards, card{f, label})
				}
			}
		}
	}
	return cards, nil
}
