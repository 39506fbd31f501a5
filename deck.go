package ankigreek

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSeparator joins the backs of one front in a deck line.
const DefaultSeparator = "<br>"

// Index maps keys to values, both kept in order of first insertion. A value
// is stored at most once per key. The zero value is ready to use.
type Index struct {
	keys   []string
	values map[string][]string
	seen   map[string]map[string]bool
}

// Add appends value under key unless it is already there. It reports
// whether the index changed.
func (x *Index) Add(key, value string) bool {
	if x.values == nil {
		x.values = make(map[string][]string)
		x.seen = make(map[string]map[string]bool)
	}
	set, ok := x.seen[key]
	if !ok {
		set = make(map[string]bool)
		x.seen[key] = set
		x.keys = append(x.keys, key)
	}
	if set[value] {
		return false
	}
	set[value] = true
	x.values[key] = append(x.values[key], value)
	return true
}

// Keys returns the keys in insertion order.
func (x *Index) Keys() []string {
	return append([]string(nil), x.keys...)
}

// Values returns the values of key in insertion order.
func (x *Index) Values(key string) []string {
	return append([]string(nil), x.values[key]...)
}

// Len returns the number of keys.
func (x *Index) Len() int {
	return len(x.keys)
}

// Entry is one line of a deck.
type Entry struct {
	Front string   `json:"front"`
	Backs []string `json:"backs"`
}

// Entries lists the index as deck entries.
func (x *Index) Entries() []Entry {
	out := make([]Entry, 0, len(x.keys))
	for _, k := range x.keys {
		out = append(out, Entry{Front: k, Backs: x.Values(k)})
	}
	return out
}

// Lines renders one "front; back<sep>back" line per key, without the
// trailing newline.
func (x *Index) Lines(sep string) []string {
	out := make([]string, 0, len(x.keys))
	for _, k := range x.keys {
		out = append(out, k+"; "+strings.Join(x.values[k], sep))
	}
	return out
}

// Write writes the rendered lines to w, each terminated by a newline.
func (x *Index) Write(w io.Writer, sep string) error {
	bw := bufio.NewWriter(w)
	for _, line := range x.Lines(sep) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write deck: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	return nil
}

// Deck is the pair of indices built by one generation run: Forward maps a
// form to what it is, Reverse maps a prompt to the forms answering it.
type Deck struct {
	Forward Index
	Reverse Index
}

// NewDeck returns an empty deck.
func NewDeck() *Deck {
	return &Deck{}
}

// add records a card and its reverse.
func (d *Deck) add(front, back string) {
	d.Forward.Add(front, back)
	d.Reverse.Add(back, front)
}

// FileNames returns the forward and reverse deck file names for base
// ("nouns", "verbs"). A tense filter is written into the names so that decks
// for different filters do not overwrite each other.
func FileNames(base string, filter []string) (forward, reverse string) {
	suffix := ".txt"
	if len(filter) > 0 {
		suffix = "." + strings.Join(filter, ",") + suffix
	}
	return base + suffix, "reverse_" + base + suffix
}

// Save writes both indices into dir under the FileNames of base and
// returns the paths written.
func (d *Deck) Save(dir, base string, filter []string, sep string) ([]string, error) {
	fwd, rev := FileNames(base, filter)
	var paths []string
	for _, f := range []struct {
		name string
		idx  *Index
	}{{fwd, &d.Forward}, {rev, &d.Reverse}} {
		path := filepath.Join(dir, f.name)
		if err := writeIndex(path, f.idx, sep); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeIndex(path string, idx *Index, sep string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := idx.Write(out, sep); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return out.Close()
}
