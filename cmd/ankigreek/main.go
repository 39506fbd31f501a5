// Command ankigreek builds Anki decks of Ancient Greek noun and verb forms.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ankigreek/ankigreek"
	"github.com/ankigreek/ankigreek/internal/config"
	"github.com/ankigreek/ankigreek/internal/logging"
	"github.com/ankigreek/ankigreek/internal/store"
	"github.com/ankigreek/ankigreek/internal/wiktionary"
)

const helpText = `ankigreek - Ancient Greek paradigm flashcards

Usage:
  ankigreek nouns get [--config FILE] <citation>...
  ankigreek nouns list [--config FILE]
  ankigreek nouns show [--config FILE] <citation>
  ankigreek nouns anki [--config FILE] [--lists first,second,third] [<citation>...]
  ankigreek verbs show [--config FILE] <lemma>
  ankigreek verbs anki [--config FILE] [--tenses present,1st aorist] [<lemma>...]
  ankigreek lemmatize [--config FILE] <text>...
  ankigreek tenses
  ankigreek help

Nouns are cited with their article ("ὁ νοῦς", "ὁ/ἡ βοῦς"). Without words,
"anki" uses the built-in word lists. Decks are written to deck.output_dir as
nouns.txt and reverse_nouns.txt (verbs.txt and reverse_verbs.txt for verbs;
a tense filter is added to the names).

Examples:
  ankigreek nouns get "ἡ χώρα"
  ankigreek nouns anki --lists third
  ankigreek verbs anki --tenses "present,imperfect"
  ankigreek lemmatize "λέλυκα τὸν νοῦν"
`

// printUsage writes the CLI help text to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, helpText+"\n")
}

// app bundles what every subcommand needs.
type app struct {
	cfg    *config.Config
	gen    *ankigreek.Generator
	store  *store.Store
	log    zerolog.Logger
	out    io.Writer
	closer func()
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	var lx *ankigreek.Lexicon
	if cfg.Deck.LexiconDir != "" {
		lx, err = ankigreek.LoadLexicon(os.DirFS(cfg.Deck.LexiconDir))
	} else {
		lx, err = ankigreek.DefaultLexicon()
	}
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	st, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		logCloser.Close()
		return nil, err
	}
	fetcher := wiktionary.New(wiktionary.Options{
		BaseURL:   cfg.Wiktionary.BaseURL,
		UserAgent: cfg.Wiktionary.UserAgent,
		Timeout:   cfg.Wiktionary.Timeout,
		Interval:  cfg.Wiktionary.Interval,
		Offline:   cfg.Wiktionary.Offline,
	})
	return &app{
		cfg: cfg,
		gen: ankigreek.New(lx,
			ankigreek.WithStore(st),
			ankigreek.WithFetcher(fetcher),
			ankigreek.WithLogger(logger),
		),
		store: st,
		log:   logger,
		out:   os.Stdout,
		closer: func() {
			st.Close()
			logCloser.Close()
		},
	}, nil
}

// splitList splits a comma-separated flag value.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return errors.New("missing subcommand")
	}
	switch args[0] {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return nil
	case "tenses":
		for _, t := range ankigreek.Tenses {
			fmt.Println(t)
		}
		return nil
	case "lemmatize":
		return runLemmatize(ctx, args[1:])
	case "nouns", "verbs":
		if len(args) < 2 {
			return fmt.Errorf("%q expects one of get, list, show, anki", args[0])
		}
		return runKind(ctx, args[0], args[1], args[2:])
	}
	printUsage(os.Stderr)
	return fmt.Errorf("unknown subcommand %q", args[0])
}

func runKind(ctx context.Context, kind, action string, args []string) error {
	fs := flag.NewFlagSet(kind+" "+action, flag.ContinueOnError)
	configPath := fs.String("config", "", "path to the YAML configuration")
	lists := fs.String("lists", "", "comma-separated word lists (nouns: first, second, third; verbs: verbs)")
	tenses := fs.String("tenses", "", "comma-separated list of tenses to study (verbs only)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}

	a, err := newApp(ctx, *configPath)
	if err != nil {
		return err
	}
	defer a.closer()

	words := fs.Args()
	switch {
	case kind == "nouns" && action == "get":
		return a.nounsGet(ctx, words)
	case kind == "nouns" && action == "list":
		return a.nounsList(ctx)
	case action == "show":
		if len(words) != 1 {
			return fmt.Errorf("%q expects exactly one word", kind+" show")
		}
		return a.show(ctx, kind, words[0])
	case action == "anki":
		if *tenses != "" && kind != "verbs" {
			return errors.New("--tenses applies to verbs only")
		}
		if len(words) == 0 {
			if words, err = a.defaultWords(kind, splitList(*lists)); err != nil {
				return err
			}
		}
		return a.anki(ctx, kind, words, splitList(*tenses))
	}
	return fmt.Errorf("unknown action %q for %s", action, kind)
}

func runLemmatize(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lemmatize", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to the YAML configuration")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("lemmatize expects some Greek text")
	}

	a, err := newApp(ctx, *configPath)
	if err != nil {
		return err
	}
	defer a.closer()
	return a.lemmatize(strings.Join(fs.Args(), " "))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		stop()
		log.Fatal().Err(err).Send()
	}
}
