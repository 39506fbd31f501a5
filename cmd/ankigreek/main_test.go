package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offlineEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ANKIGREEK_CONFIG", "")
	t.Setenv("ANKIGREEK_STORE_PATH", filepath.Join(dir, "paradigms.db"))
	t.Setenv("ANKIGREEK_DECK_OUTPUT_DIR", dir)
	t.Setenv("ANKIGREEK_OFFLINE", "true")
	t.Setenv("ANKIGREEK_LOG_LEVEL", "error")
	return dir
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"present", "1st aorist"}, splitList(" present, ,1st aorist "))
	assert.Nil(t, splitList(""))
}

func TestRunRejectsUnknownSubcommand(t *testing.T) {
	err := run(context.Background(), []string{"adjectives"})
	assert.Error(t, err)
}

func TestNounsAnkiWritesDecks(t *testing.T) {
	dir := offlineEnv(t)

	require.NoError(t, run(context.Background(), []string{"nouns", "anki", "ὁ νοῦς", "ἡ μνᾶ"}))

	data, err := os.ReadFile(filepath.Join(dir, "nouns.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "νόος; ὁ νόος<br><br>ὁ νοῦς\n"), string(data))

	_, err = os.Stat(filepath.Join(dir, "reverse_nouns.txt"))
	assert.NoError(t, err)
}

func TestVerbsAnkiWithTenses(t *testing.T) {
	dir := offlineEnv(t)

	require.NoError(t, run(context.Background(), []string{"verbs", "anki", "--tenses", "present", "λύω"}))

	for _, name := range []string{"verbs.present.txt", "reverse_verbs.present.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	err := run(context.Background(), []string{"verbs", "anki", "--tenses", "aorist", "λύω"})
	assert.Error(t, err)
}

func TestLemmatizeCommand(t *testing.T) {
	offlineEnv(t)

	assert.Error(t, run(context.Background(), []string{"lemmatize"}))
	assert.NoError(t, run(context.Background(), []string{"lemmatize", "λέλυκα", "τὸν", "νοῦν"}))
	assert.Error(t, run(context.Background(), []string{"lemmatize", "Lorem ipsum"}))
}

func TestNounsListEmptyStore(t *testing.T) {
	offlineEnv(t)
	assert.NoError(t, run(context.Background(), []string{"nouns", "list"}))
}
