package ankigreek

import (
	"fmt"
	"slices"
)

// Number is the grammatical number of a nominal cell.
type Number string

const (
	Singular Number = "Singular"
	Dual     Number = "Dual"
	Plural   Number = "Plural"
)

// Case is the grammatical case of a nominal cell.
type Case string

const (
	Nominative Case = "Nominative"
	Genitive   Case = "Genitive"
	Dative     Case = "Dative"
	Accusative Case = "Accusative"
	Vocative   Case = "Vocative"
)

// Gender selects a row of the article table. Common is the
// masculine-or-feminine gender of nouns like ὁ/ἡ βοῦς; it never has a row
// of its own.
type Gender string

const (
	Masculine Gender = "m"
	Feminine  Gender = "f"
	Neuter    Gender = "n"
	Common    Gender = "m/f"
)

// Voice is the verbal voice.
type Voice string

const (
	Active  Voice = "active"
	Middle  Voice = "middle"
	Passive Voice = "passive"
)

// Mood is the verbal mood. Infinitive and participle are treated as moods.
type Mood string

const (
	Indicative  Mood = "indicative"
	Subjunctive Mood = "subjunctive"
	Optative    Mood = "optative"
	Imperative  Mood = "imperative"
	Infinitive  Mood = "infinitive"
	Participle  Mood = "participle"
)

// Tense is a tense name as used by the paradigm data, including the
// "1st"/"2nd" qualifiers of the aorist, perfect, pluperfect and future.
type Tense string

const (
	Present          Tense = "present"
	Imperfect        Tense = "imperfect"
	Future           Tense = "future"
	FirstFuture      Tense = "1st future"
	FirstAorist      Tense = "1st aorist"
	SecondAorist     Tense = "2nd aorist"
	Perfect          Tense = "perfect"
	FirstPerfect     Tense = "1st perfect"
	SecondPerfect    Tense = "2nd perfect"
	Pluperfect       Tense = "pluperfect"
	FirstPluperfect  Tense = "1st pluperfect"
	SecondPluperfect Tense = "2nd pluperfect"
	FuturePerfect    Tense = "future perfect"
)

// aorist is only ever produced by Tense.Base; it is not a valid data tense.
const aorist Tense = "aorist"

// Person is one of the eight person/number slots of a finite verb form.
// There is no first person dual.
type Person string

const (
	First        Person = "1st"
	Second       Person = "2nd"
	Third        Person = "3rd"
	SecondDual   Person = "2nd dual"
	ThirdDual    Person = "3rd dual"
	FirstPlural  Person = "1st plural"
	SecondPlural Person = "2nd plural"
	ThirdPlural  Person = "3rd plural"
)

// Canonical orders. Data files and deck walks rely on them.
var (
	Numbers = []Number{Singular, Dual, Plural}
	Cases   = []Case{Nominative, Genitive, Dative, Accusative, Vocative}
	Genders = []Gender{Masculine, Feminine, Neuter}
	Voices  = []Voice{Active, Middle, Passive}
	Moods   = []Mood{Indicative, Subjunctive, Optative, Imperative, Infinitive, Participle}
	Tenses  = []Tense{
		Present, Imperfect, Future, FirstFuture, FirstAorist, SecondAorist,
		Perfect, FirstPerfect, SecondPerfect, Pluperfect, FirstPluperfect,
		SecondPluperfect, FuturePerfect,
	}
	Persons = []Person{
		First, Second, Third, SecondDual, ThirdDual,
		FirstPlural, SecondPlural, ThirdPlural,
	}
)

func (n Number) String() string { return string(n) }
func (c Case) String() string   { return string(c) }
func (g Gender) String() string { return string(g) }
func (v Voice) String() string  { return string(v) }
func (m Mood) String() string   { return string(m) }
func (t Tense) String() string  { return string(t) }
func (p Person) String() string { return string(p) }

func (n Number) IsValid() bool {
	switch n {
	case Singular, Dual, Plural:
		return true
	}
	return false
}

func (c Case) IsValid() bool {
	switch c {
	case Nominative, Genitive, Dative, Accusative, Vocative:
		return true
	}
	return false
}

// IsValid reports whether g is a tabulated gender or Common.
func (g Gender) IsValid() bool {
	switch g {
	case Masculine, Feminine, Neuter, Common:
		return true
	}
	return false
}

func (v Voice) IsValid() bool {
	switch v {
	case Active, Middle, Passive:
		return true
	}
	return false
}

func (m Mood) IsValid() bool {
	switch m {
	case Indicative, Subjunctive, Optative, Imperative, Infinitive, Participle:
		return true
	}
	return false
}

// IsFinite reports whether forms of m are indexed by Person.
func (m Mood) IsFinite() bool {
	switch m {
	case Indicative, Subjunctive, Optative, Imperative:
		return true
	}
	return false
}

func (t Tense) IsValid() bool {
	switch t {
	case Present, Imperfect, Future, FirstFuture, FirstAorist, SecondAorist,
		Perfect, FirstPerfect, SecondPerfect, Pluperfect, FirstPluperfect,
		SecondPluperfect, FuturePerfect:
		return true
	}
	return false
}

// Base drops the "1st"/"2nd" qualifier: "1st aorist" -> "aorist".
// Unqualified tenses are returned unchanged.
func (t Tense) Base() Tense {
	switch t {
	case FirstFuture:
		return Future
	case FirstAorist, SecondAorist:
		return aorist
	case FirstPerfect, SecondPerfect:
		return Perfect
	case FirstPluperfect, SecondPluperfect:
		return Pluperfect
	}
	return t
}

func (p Person) IsValid() bool {
	switch p {
	case First, Second, Third, SecondDual, ThirdDual, FirstPlural, SecondPlural, ThirdPlural:
		return true
	}
	return false
}

// ParseNumber accepts the label exactly as written in paradigm data and
// Wiktionary table headers, ignoring surrounding space and letter case.
func ParseNumber(s string) (Number, error) {
	for _, n := range Numbers {
		if equalFoldTrim(s, string(n)) {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: number %q", ErrUnresolvable, s)
}

// ParseCase is the Case counterpart of ParseNumber.
func ParseCase(s string) (Case, error) {
	for _, c := range Cases {
		if equalFoldTrim(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: case %q", ErrUnresolvable, s)
}

// ParseGender accepts the short tags (m, f, n, m/f) as well as the words
// Wiktionary puts in its gender abbreviations.
func ParseGender(s string) (Gender, error) {
	switch normalizeLabel(s) {
	case "m", "masculine":
		return Masculine, nil
	case "f", "feminine":
		return Feminine, nil
	case "n", "neuter":
		return Neuter, nil
	case "m/f", "common", "masculine or feminine":
		return Common, nil
	}
	return "", fmt.Errorf("%w: gender %q", ErrUnresolvable, s)
}

func ParseVoice(s string) (Voice, error) {
	for _, v := range Voices {
		if equalFoldTrim(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: voice %q", ErrUnresolvable, s)
}

func ParseMood(s string) (Mood, error) {
	for _, m := range Moods {
		if equalFoldTrim(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: mood %q", ErrUnresolvable, s)
}

func ParseTense(s string) (Tense, error) {
	for _, t := range Tenses {
		if equalFoldTrim(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: tense %q", ErrUnresolvable, s)
}

// ParseTenses validates a tense filter. Nil or empty input selects every
// tense. Duplicates are dropped; the result follows the vocabulary order so
// that a filter never reorders a deck.
func ParseTenses(names []string) ([]Tense, error) {
	if len(names) == 0 {
		return slices.Clone(Tenses), nil
	}
	want := make(map[Tense]bool, len(names))
	for _, name := range names {
		t, err := ParseTense(name)
		if err != nil {
			return nil, err
		}
		want[t] = true
	}
	out := make([]Tense, 0, len(want))
	for _, t := range Tenses {
		if want[t] {
			out = append(out, t)
		}
	}
	return out, nil
}
