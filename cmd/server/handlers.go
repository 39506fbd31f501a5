package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/ankigreek/ankigreek"
)

// ---- JSON response types ------------------------------------------------

type paradigmJSON struct {
	Kind   string                  `json:"kind"`
	Source ankigreek.Source        `json:"source"`
	Noun   *ankigreek.NounParadigm `json:"noun,omitempty"`
	Verb   *ankigreek.VerbParadigm `json:"verb,omitempty"`
}

type failureJSON struct {
	Word  string `json:"word"`
	Error string `json:"error"`
}

type deckResponse struct {
	RunID      string            `json:"run_id"`
	Words      int               `json:"words"`
	Forward    []ankigreek.Entry `json:"forward"`
	Reverse    []ankigreek.Entry `json:"reverse"`
	Failed     []failureJSON     `json:"failed,omitempty"`
	Incomplete []string          `json:"incomplete,omitempty"`
}

type lemmatizeResponse struct {
	Results []ankigreek.LemmatizationResult `json:"results"`
}

type tensesResponse struct {
	Tenses []ankigreek.Tense `json:"tenses"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

type api struct {
	gen *ankigreek.Generator
	log zerolog.Logger
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		a.log.Error().Err(err).Msg("encode error")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func (a *api) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, errorResponse{Error: msg})
}

// statusOf maps domain errors to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ankigreek.ErrUnresolvable), errors.Is(err, ankigreek.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ankigreek.ErrNotFound), errors.Is(err, ankigreek.ErrNoParadigm):
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// words reads the repeatable "word" parameter, falling back to the word
// lists named by "list".
func (a *api) words(r *http.Request) ([]string, error) {
	q := r.URL.Query()
	if words := q["word"]; len(words) > 0 {
		return words, nil
	}
	var names []string
	for _, l := range q["list"] {
		names = append(names, splitList(l)...)
	}
	if len(names) == 0 {
		return nil, errors.New("missing 'word' or 'list' query parameter")
	}
	return a.gen.Lexicon().Words(names...)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toDeckResponse(rep *ankigreek.Report) deckResponse {
	out := deckResponse{
		RunID:      rep.RunID,
		Words:      rep.Words,
		Forward:    rep.Deck.Forward.Entries(),
		Reverse:    rep.Deck.Reverse.Entries(),
		Incomplete: rep.Incomplete,
	}
	for _, we := range rep.Failed {
		out.Failed = append(out.Failed, failureJSON{Word: we.Word, Error: we.Err.Error()})
	}
	return out
}

// ---- handlers -----------------------------------------------------------

func (a *api) handleParadigm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		a.writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	if r.URL.Query().Get("kind") == "verb" {
		p, src, err := a.gen.Verb(r.Context(), word)
		if err != nil {
			a.writeError(w, statusOf(err), err.Error())
			return
		}
		a.writeJSON(w, http.StatusOK, paradigmJSON{Kind: "verb", Source: src, Verb: p})
		return
	}
	p, src, err := a.gen.Noun(r.Context(), word)
	if err != nil {
		a.writeError(w, statusOf(err), err.Error())
		return
	}
	a.writeJSON(w, http.StatusOK, paradigmJSON{Kind: "noun", Source: src, Noun: p})
}

func (a *api) handleNounDeck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	words, err := a.words(r)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep, err := a.gen.NounDeck(r.Context(), words)
	if err != nil {
		a.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	a.writeJSON(w, http.StatusOK, toDeckResponse(rep))
}

func (a *api) handleVerbDeck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	words, err := a.words(r)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep, err := a.gen.VerbDeck(r.Context(), words, splitList(r.URL.Query().Get("tenses")))
	if err != nil {
		a.writeError(w, statusOf(err), err.Error())
		return
	}
	a.writeJSON(w, http.StatusOK, toDeckResponse(rep))
}

func (a *api) handleLemmatize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		a.writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return
	}
	a.writeJSON(w, http.StatusOK, lemmatizeResponse{Results: a.gen.Lemmatizer().LemmatizeText(text)})
}

func (a *api) handleTenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	a.writeJSON(w, http.StatusOK, tensesResponse{Tenses: ankigreek.Tenses})
}

func (a *api) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/paradigm", a.handleParadigm)
	mux.HandleFunc("/api/deck/nouns", a.handleNounDeck)
	mux.HandleFunc("/api/deck/verbs", a.handleVerbDeck)
	mux.HandleFunc("/api/lemmatize", a.handleLemmatize)
	mux.HandleFunc("/api/tenses", a.handleTenses)
	return mux
}
