// Package ankigreek turns Ancient Greek noun and verb paradigms into
// flashcard decks for Anki's plain text import.
//
// Paradigms come from three places, tried in order: the hand-authored
// lexicon shipped with the package, a persistent store of earlier
// harvests, and inflection tables extracted from Wiktionary pages. A deck
// is built for a whole word list in one run; a word that cannot be
// resolved is reported and skipped.
package ankigreek

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Fetcher returns the markup of the dictionary page for a word.
type Fetcher interface {
	Fetch(ctx context.Context, word string) (string, error)
}

// Store keeps paradigms between runs. A miss is ErrNotFound.
type Store interface {
	Noun(ctx context.Context, citation string) (*NounParadigm, error)
	PutNoun(ctx context.Context, p *NounParadigm) error
	Verb(ctx context.Context, lemma string) (*VerbParadigm, error)
	PutVerb(ctx context.Context, p *VerbParadigm) error
}

// Source tells where a paradigm was found.
type Source string

const (
	SourceLexicon    Source = "lexicon"
	SourceStore      Source = "store"
	SourceWiktionary Source = "wiktionary"
)

// Generator resolves paradigms and builds decks.
type Generator struct {
	lexicon *Lexicon
	store   Store
	fetcher Fetcher
	log     zerolog.Logger

	lemOnce sync.Once
	lem     *Lemmatizer
}

// Option configures a Generator.
type Option func(*Generator)

// WithStore makes the generator read and save harvested paradigms.
func WithStore(s Store) Option {
	return func(g *Generator) { g.store = s }
}

// WithFetcher makes the generator harvest unknown nouns.
func WithFetcher(f Fetcher) Option {
	return func(g *Generator) { g.fetcher = f }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New returns a generator over lx.
func New(lx *Lexicon, opts ...Option) *Generator {
	g := &Generator{lexicon: lx, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Lexicon returns the hand-authored lexicon.
func (g *Generator) Lexicon() *Lexicon {
	return g.lexicon
}

// Lemmatizer returns the form index of the lexicon, built on first use.
func (g *Generator) Lemmatizer() *Lemmatizer {
	g.lemOnce.Do(func() { g.lem = NewLemmatizer(g.lexicon) })
	return g.lem
}

// Noun resolves the paradigm of citation: lexicon, then store, then a
// Wiktionary harvest that is saved to the store.
func (g *Generator) Noun(ctx context.Context, citation string) (*NounParadigm, Source, error) {
	if p, ok := g.lexicon.Noun(citation); ok {
		return p, SourceLexicon, nil
	}
	if g.store != nil {
		p, err := g.store.Noun(ctx, citation)
		switch {
		case err == nil:
			return p, SourceStore, nil
		case !errors.Is(err, ErrNotFound):
			return nil, "", err
		}
	}
	p, err := g.Harvest(ctx, citation)
	if err != nil {
		return nil, "", err
	}
	return p, SourceWiktionary, nil
}

// Harvest fetches the page of citation, extracts its inflection table and
// saves the result to the store, replacing what was there. A failed save is
// logged; the paradigm is still returned.
func (g *Generator) Harvest(ctx context.Context, citation string) (*NounParadigm, error) {
	if g.fetcher == nil {
		return nil, fmt.Errorf("%s: %w", citation, ErrNoParadigm)
	}
	markup, err := g.fetcher.Fetch(ctx, citation)
	if err != nil {
		return nil, err
	}
	table := ExtractTable(markup)
	p, err := table.NounParadigm(CitationKey(citation))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", citation, err)
	}
	g.log.Info().
		Str("word", p.Citation).
		Str("gender", p.Gender).
		Int("cells", p.Len()).
		Msg("harvested paradigm")

	if g.store != nil {
		if err := g.store.PutNoun(ctx, p); err != nil {
			g.log.Warn().Err(err).Str("word", p.Citation).Msg("failed to save paradigm")
		}
	}
	return p, nil
}

// Verb resolves the paradigm of lemma from the lexicon or the store. Verb
// tables are not harvested.
func (g *Generator) Verb(ctx context.Context, lemma string) (*VerbParadigm, Source, error) {
	if p, ok := g.lexicon.Verb(lemma); ok {
		return p, SourceLexicon, nil
	}
	if g.store != nil {
		p, err := g.store.Verb(ctx, lemma)
		if err == nil {
			return p, SourceStore, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("%s: %w", lemma, ErrNoParadigm)
}

// Report is the outcome of one generation run.
type Report struct {
	RunID string
	Deck  *Deck
	// Words counts the words that made it into the deck.
	Words int
	// Failed lists the words left out, in order.
	Failed []*WordError
	// Incomplete lists carded nouns lacking singular forms.
	Incomplete []string
}

// Err joins the per-word failures, nil when there were none.
func (r *Report) Err() error {
	errs := make([]error, 0, len(r.Failed))
	for _, we := range r.Failed {
		errs = append(errs, we)
	}
	return errors.Join(errs...)
}

func (g *Generator) newReport() (*Report, zerolog.Logger) {
	r := &Report{RunID: uuid.NewString(), Deck: NewDeck()}
	return r, g.log.With().Str("run_id", r.RunID).Logger()
}

// NounDeck builds the noun deck of words. A word whose paradigm cannot be
// resolved or carded is reported in the result and the run goes on; only
// cancellation of ctx stops it early.
func (g *Generator) NounDeck(ctx context.Context, words []string) (*Report, error) {
	r, log := g.newReport()
	for _, w := range words {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		p, src, err := g.Noun(ctx, w)
		if err == nil {
			if !p.Has(Singular) {
				log.Warn().Str("word", w).Msg("bad definition: no singular forms")
				r.Incomplete = append(r.Incomplete, w)
			}
			err = r.Deck.AddNoun(p)
		}
		if err != nil {
			we := &WordError{Word: w, Err: err}
			log.Warn().Err(err).Str("word", w).Msg("skipping word")
			r.Failed = append(r.Failed, we)
			continue
		}
		r.Words++
		log.Debug().Str("word", w).Str("source", string(src)).Msg("carded noun")
	}
	log.Info().
		Int("words", r.Words).
		Int("failed", len(r.Failed)).
		Int("cards", r.Deck.Forward.Len()).
		Msg("noun deck built")
	return r, nil
}

// VerbDeck builds the verb deck of words restricted to the named tenses;
// no names means every tense. Unknown tense names are rejected before any
// word is looked at.
func (g *Generator) VerbDeck(ctx context.Context, words []string, tenseNames []string) (*Report, error) {
	tenses, err := ParseTenses(tenseNames)
	if err != nil {
		return nil, err
	}
	r, log := g.newReport()
	for _, w := range words {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		p, src, err := g.Verb(ctx, w)
		if err == nil {
			err = r.Deck.AddVerb(p, tenses)
		}
		if err != nil {
			log.Warn().Err(err).Str("word", w).Msg("skipping word")
			r.Failed = append(r.Failed, &WordError{Word: w, Err: err})
			continue
		}
		r.Words++
		log.Debug().Str("word", w).Str("source", string(src)).Msg("carded verb")
	}
	log.Info().
		Int("words", r.Words).
		Int("failed", len(r.Failed)).
		Int("cards", r.Deck.Forward.Len()).
		Strs("tenses", tenseNames).
		Msg("verb deck built")
	return r, nil
}
