package ankigreek

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexKeepsInsertionOrder(t *testing.T) {
	var x Index
	assert.True(t, x.Add("b", "2"))
	assert.True(t, x.Add("a", "1"))
	assert.True(t, x.Add("b", "3"))
	assert.False(t, x.Add("b", "2"))

	assert.Equal(t, []string{"b", "a"}, x.Keys())
	assert.Equal(t, []string{"2", "3"}, x.Values("b"))
	assert.Nil(t, x.Values("missing"))
	assert.Equal(t, 2, x.Len())
	assert.Equal(t, []Entry{
		{Front: "b", Backs: []string{"2", "3"}},
		{Front: "a", Backs: []string{"1"}},
	}, x.Entries())
}

func TestIndexValuesAreCopies(t *testing.T) {
	var x Index
	x.Add("k", "v")
	x.Values("k")[0] = "changed"
	x.Keys()[0] = "changed"
	assert.Equal(t, []string{"v"}, x.Values("k"))
	assert.Equal(t, []string{"k"}, x.Keys())
}

func TestIndexLinesAndWrite(t *testing.T) {
	var x Index
	x.Add("νοῦ", "τοῦ νοῦ")
	x.Add("νοῦ", "ῶ νοῦ")
	x.Add("νῷ", "τῷ νῷ")

	assert.Equal(t, []string{"νοῦ; τοῦ νοῦ<br>ῶ νοῦ", "νῷ; τῷ νῷ"}, x.Lines(DefaultSeparator))
	assert.Equal(t, []string{"νοῦ; τοῦ νοῦ<br><br>ῶ νοῦ", "νῷ; τῷ νῷ"}, x.Lines("<br><br>"))

	var buf bytes.Buffer
	require.NoError(t, x.Write(&buf, DefaultSeparator))
	assert.Equal(t, "νοῦ; τοῦ νοῦ<br>ῶ νοῦ\nνῷ; τῷ νῷ\n", buf.String())

	var empty Index
	buf.Reset()
	require.NoError(t, empty.Write(&buf, DefaultSeparator))
	assert.Empty(t, buf.String())
}

func TestFileNames(t *testing.T) {
	fwd, rev := FileNames("nouns", nil)
	assert.Equal(t, "nouns.txt", fwd)
	assert.Equal(t, "reverse_nouns.txt", rev)

	fwd, rev = FileNames("verbs", []string{"present", "1st aorist"})
	assert.Equal(t, "verbs.present,1st aorist.txt", fwd)
	assert.Equal(t, "reverse_verbs.present,1st aorist.txt", rev)
}

func TestDeckSave(t *testing.T) {
	d := NewDeck()
	d.add("λύω", "label one")
	d.add("λύω", "label two")

	dir := t.TempDir()
	paths, err := d.Save(dir, "verbs", []string{"present"}, DefaultSeparator)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "verbs.present.txt"),
		filepath.Join(dir, "reverse_verbs.present.txt"),
	}, paths)

	fwd, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "λύω; label one<br>label two\n", string(fwd))

	rev, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "label one; λύω\nlabel two; λύω\n", string(rev))
}

func TestDeckSaveMissingDir(t *testing.T) {
	d := NewDeck()
	d.add("a", "b")
	paths, err := d.Save(filepath.Join(t.TempDir(), "absent"), "nouns", nil, DefaultSeparator)
	assert.Error(t, err)
	assert.Empty(t, paths)
}
