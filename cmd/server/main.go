// Command server exposes the deck generator as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/paradigm?word=<citation>[&kind=verb]
//	GET  /api/deck/nouns?word=<citation>...  or  ?list=first,second
//	GET  /api/deck/verbs?word=<lemma>...[&tenses=present,1st aorist]
//	GET  /api/lemmatize?text=<Greek text>
//	GET  /api/tenses
//
// A noun list deck fetches every missing word from Wiktionary at the
// configured interval; the default write timeout of ten minutes covers the
// longest built-in list. Set wiktionary.offline or warm the store first to
// serve such requests quickly.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/ankigreek/ankigreek"
	"github.com/ankigreek/ankigreek/internal/config"
	"github.com/ankigreek/ankigreek/internal/logging"
	"github.com/ankigreek/ankigreek/internal/store"
	"github.com/ankigreek/ankigreek/internal/wiktionary"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration")
	addr := flag.String("addr", "", "listen address (overrides server.addr)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize log")
	}
	defer closer.Close()

	lx, err := loadLexicon(cfg.Deck.LexiconDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load lexicon")
	}

	st, err := store.Open(context.Background(), cfg.Store.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	gen := ankigreek.New(lx,
		ankigreek.WithStore(st),
		ankigreek.WithFetcher(wiktionary.New(wiktionary.Options{
			BaseURL:   cfg.Wiktionary.BaseURL,
			UserAgent: cfg.Wiktionary.UserAgent,
			Timeout:   cfg.Wiktionary.Timeout,
			Interval:  cfg.Wiktionary.Interval,
			Offline:   cfg.Wiktionary.Offline,
		})),
		ankigreek.WithLogger(logger),
	)

	a := &api{gen: gen, log: logger}
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.Origins(),
		AllowedMethods: []string{http.MethodGet},
	}).Handler(a.routes())

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Info().Str("addr", cfg.Server.Addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func loadLexicon(dir string) (*ankigreek.Lexicon, error) {
	if dir == "" {
		return ankigreek.DefaultLexicon()
	}
	return ankigreek.LoadLexicon(os.DirFS(dir))
}
