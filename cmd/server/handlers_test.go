package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankigreek/ankigreek"
)

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	lx, err := ankigreek.DefaultLexicon()
	require.NoError(t, err)
	a := &api{gen: ankigreek.New(lx), log: zerolog.Nop()}
	return a.routes()
}

func get(t *testing.T, h http.Handler, path string, q url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if q != nil {
		target += "?" + q.Encode()
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestTenses(t *testing.T) {
	rec := get(t, newTestAPI(t), "/api/tenses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body tensesResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ankigreek.Tenses, body.Tenses)
}

func TestParadigm(t *testing.T) {
	h := newTestAPI(t)

	rec := get(t, h, "/api/paradigm", url.Values{"word": {"ὁ νοῦς"}})
	require.Equal(t, http.StatusOK, rec.Code)
	var body paradigmJSON
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ankigreek.SourceLexicon, body.Source)
	require.NotNil(t, body.Noun)
	assert.Equal(t, "ὁ νοῦς", body.Noun.Citation)

	rec = get(t, h, "/api/paradigm", url.Values{"word": {"λύω"}, "kind": {"verb"}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/api/paradigm", url.Values{"word": {"ὁ ἵππος"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, h, "/api/paradigm", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNounDeckReportsBadWords(t *testing.T) {
	rec := get(t, newTestAPI(t), "/api/deck/nouns", url.Values{"word": {"ὁ νοῦς", "ὁ ἵππος"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var body deckResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.RunID)
	assert.Equal(t, 1, body.Words)
	require.Len(t, body.Failed, 1)
	assert.Equal(t, "ὁ ἵππος", body.Failed[0].Word)
	assert.NotEmpty(t, body.Forward)
	assert.NotEmpty(t, body.Reverse)
}

func TestVerbDeckRejectsUnknownTense(t *testing.T) {
	h := newTestAPI(t)

	rec := get(t, h, "/api/deck/verbs", url.Values{"word": {"λύω"}, "tenses": {"present,aorist"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/api/deck/verbs", url.Values{"list": {"verbs"}, "tenses": {"present"}})
	require.Equal(t, http.StatusOK, rec.Code)
	var body deckResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Words)
	assert.NotEmpty(t, body.Forward)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestAPI(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tenses", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLemmatize(t *testing.T) {
	h := newTestAPI(t)

	rec := get(t, h, "/api/lemmatize", url.Values{"text": {"Λέλυκα τὸν νοῦν."}})
	require.Equal(t, http.StatusOK, rec.Code)
	var body lemmatizeResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 3)
	assert.Equal(t, "νοῦν", body.Results[2].Token)
	require.NotEmpty(t, body.Results[2].Analyses)
	assert.Equal(t, "ὁ νοῦς", body.Results[2].Analyses[0].Headword)

	rec = get(t, h, "/api/lemmatize", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
