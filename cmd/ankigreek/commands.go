package main

import (
	"context"
	"fmt"

	"github.com/ankigreek/ankigreek"
)

// defaultNounLists are carded when neither words nor lists are given.
var defaultNounLists = []string{"first", "second", "third"}

func (a *app) defaultWords(kind string, lists []string) ([]string, error) {
	if len(lists) == 0 {
		lists = defaultNounLists
		if kind == "verbs" {
			lists = []string{"verbs"}
		}
	}
	return a.gen.Lexicon().Words(lists...)
}

// nounsGet harvests every word again, replacing stored paradigms. A word
// that fails is reported and the others are still fetched.
func (a *app) nounsGet(ctx context.Context, words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("%q expects at least one citation", "nouns get")
	}
	failed := 0
	for _, w := range words {
		p, err := a.gen.Harvest(ctx, w)
		if err != nil {
			failed++
			fmt.Fprintln(a.out, (&ankigreek.WordError{Word: w, Err: err}).Error())
			continue
		}
		fmt.Fprintf(a.out, "%s: %d forms\n", p.Citation, p.Len())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d words failed", failed, len(words))
	}
	return nil
}

// nounsList prints the citations of the harvested nouns in the store.
func (a *app) nounsList(ctx context.Context) error {
	citations, err := a.store.Nouns(ctx)
	if err != nil {
		return err
	}
	for _, c := range citations {
		fmt.Fprintln(a.out, c)
	}
	return nil
}

func (a *app) show(ctx context.Context, kind, word string) error {
	if kind == "verbs" {
		p, src, err := a.gen.Verb(ctx, word)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s (%s)\n", p.Lemma, src)
		a.printVerb(p)
		return nil
	}
	p, src, err := a.gen.Noun(ctx, word)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", p.Citation, src)
	if p.Gender != "" {
		fmt.Fprintf(a.out, "gender: %s\n", p.Gender)
	}
	for _, c := range p.Cells(ankigreek.Numbers) {
		fmt.Fprintf(a.out, "%-9s %-11s %s\n", c.Number, c.Case, c.Form)
	}
	return nil
}

func (a *app) printVerb(p *ankigreek.VerbParadigm) {
	for _, v := range ankigreek.Voices {
		for _, m := range ankigreek.Moods {
			for _, t := range ankigreek.Tenses {
				switch m {
				case ankigreek.Infinitive:
					if f, ok := p.InfinitiveForm(v, t); ok {
						fmt.Fprintf(a.out, "%s %s %s: %s\n", v, m, t, f)
					}
				case ankigreek.Participle:
					grid, ok := p.ParticipleGrid(v, t)
					if !ok {
						continue
					}
					for _, n := range ankigreek.Numbers {
						for _, c := range ankigreek.Cases {
							g := grid[n][c]
							fmt.Fprintf(a.out, "%s %s %s %s %s: %s | %s | %s\n", v, m, t, n, c, g[0], g[1], g[2])
						}
					}
				default:
					forms, ok := p.FiniteForms(v, m, t)
					if !ok {
						continue
					}
					for i, person := range ankigreek.Persons {
						fmt.Fprintf(a.out, "%s %s %s %s: %s\n", v, m, t, person, forms[i])
					}
				}
			}
		}
	}
}

// anki builds the deck of words and writes both files.
func (a *app) anki(ctx context.Context, kind string, words, tenses []string) error {
	var (
		rep *ankigreek.Report
		err error
	)
	if kind == "verbs" {
		rep, err = a.gen.VerbDeck(ctx, words, tenses)
	} else {
		rep, err = a.gen.NounDeck(ctx, words)
	}
	if err != nil {
		return err
	}
	for _, we := range rep.Failed {
		fmt.Fprintln(a.out, we.Error())
	}
	for _, w := range rep.Incomplete {
		fmt.Fprintf(a.out, "bad definition for %s: no singular forms\n", w)
	}

	paths, err := rep.Deck.Save(a.cfg.Deck.OutputDir, kind, tenses, a.cfg.Deck.Separator)
	if err != nil {
		return err
	}
	a.log.Info().
		Str("run_id", rep.RunID).
		Strs("files", paths).
		Int("words", rep.Words).
		Msg("decks written")
	fmt.Fprintf(a.out, "%d words, %d cards: %v\n", rep.Words, rep.Deck.Forward.Len(), paths)
	return nil
}

// lemmatize prints the readings of every Greek word of text, one per line.
func (a *app) lemmatize(text string) error {
	results := a.gen.Lemmatizer().LemmatizeText(text)
	if len(results) == 0 {
		return fmt.Errorf("no Greek words in %q", text)
	}
	for _, res := range results {
		if len(res.Analyses) == 0 {
			fmt.Fprintf(a.out, "%s: ?\n", res.Token)
			continue
		}
		for _, an := range res.Analyses {
			fmt.Fprintf(a.out, "%s: %s, %s (%s)\n", res.Token, an.Headword, an.Description, an.Form)
		}
	}
	return nil
}
