package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankigreek/ankigreek"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "paradigms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNounRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	p := ankigreek.NewNounParadigm("ὁ νοῦς")
	p.Gender = "masculine"
	require.NoError(t, p.Set(ankigreek.Singular, ankigreek.Nominative, "(νόος) νοῦς"))
	require.NoError(t, p.Set(ankigreek.Plural, ankigreek.Dative, "νοῖς"))
	require.NoError(t, s.PutNoun(ctx, p))

	got, err := s.Noun(ctx, "ὁ  νοῦς")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	keys, err := s.Nouns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ὁ νοῦς"}, keys)
}

func TestPutReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	first := ankigreek.NewNounParadigm("ἡ μνᾶ")
	require.NoError(t, first.Set(ankigreek.Singular, ankigreek.Nominative, "μνᾶ"))
	require.NoError(t, s.PutNoun(ctx, first))

	second := ankigreek.NewNounParadigm("ἡ μνᾶ")
	require.NoError(t, second.Set(ankigreek.Singular, ankigreek.Genitive, "μνᾶς"))
	require.NoError(t, s.PutNoun(ctx, second))

	got, err := s.Noun(ctx, "ἡ μνᾶ")
	require.NoError(t, err)
	_, ok := got.Form(ankigreek.Singular, ankigreek.Nominative)
	assert.False(t, ok)
	form, ok := got.Form(ankigreek.Singular, ankigreek.Genitive)
	assert.True(t, ok)
	assert.Equal(t, "μνᾶς", form)
}

func TestVerbRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	p := ankigreek.NewVerbParadigm("λύω")
	require.NoError(t, p.SetFinite(ankigreek.Active, ankigreek.Indicative, ankigreek.Present,
		[]string{"λύω", "λύεις", "λύει", "λύετον", "λύετον", "λύομεν", "λύετε", "λύουσι(ν)"}))
	require.NoError(t, p.SetInfinitive(ankigreek.Active, ankigreek.Present, "λύειν"))
	triples := make([]ankigreek.GenderForms, ankigreek.ParticipleSlotCount)
	for i := range triples {
		triples[i] = ankigreek.GenderForms{"m", "f", "n"}
	}
	require.NoError(t, p.SetParticiple(ankigreek.Active, ankigreek.Present, triples))
	require.NoError(t, s.PutVerb(ctx, p))

	got, err := s.Verb(ctx, "λύω")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Noun(ctx, "ὁ ἵππος")
	assert.ErrorIs(t, err, ankigreek.ErrNotFound)
	_, err = s.Verb(ctx, "παιδεύω")
	assert.ErrorIs(t, err, ankigreek.ErrNotFound)
}

func TestStoredNounIsValidated(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	require.NoError(t, s.put(ctx, kindNoun, "ὁ λόγος", map[string]any{
		"citation": "ὁ λόγος",
		"forms":    map[string]any{"Trial": map[string]string{"Nominative": "λόγοι"}},
	}))
	_, err := s.Noun(ctx, "ὁ λόγος")
	assert.ErrorIs(t, err, ankigreek.ErrUnresolvable)
}
