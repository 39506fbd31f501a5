package ankigreek

import (
	"fmt"
	"strings"
)

// lineBreak separates the parts of a card label.
const lineBreak = "<br>"

// Each grammatical tag is rendered as its Greek name under a mnemonic:
// a time line for tenses, a gesture for moods, a pronoun for persons.
var (
	tenseSymbols = map[Tense]string{
		Present:       "(ἐνεστὼς χρόνος)<br>--|--",
		Imperfect:     "(παρατατικός)<br>----    |",
		Future:        "(μέλλων)<br>|    -<br>|    -----",
		aorist:        "(ἀόριστος χρόνος)<br>-   |",
		Perfect:       "(παρακείμενος χρόνος)<br>----|",
		Pluperfect:    "(υπερσυντελικὸς χρόνος)<br>----X    |",
		FuturePerfect: "(τετελέσμενος μέλλων)<br>|    ----    X",
	}
	moodSymbols = map[Mood]string{
		Indicative:  "(ὁριστηκὴ ἔγκλισις)<br>👉 ",
		Subjunctive: "(ὑποτακτικὴ ἔγκλισις)<br>ἄν",
		Optative:    "(εὐτικὴ ἔγκλισις)<br>εἰ",
		Imperative:  "(προστακτικὴ ἔγκλισις)<br>✋ ",
		Infinitive:  "(ἀπαρέμφατος ἔγκλισις)<br>∞",
	}
	personSymbols = map[Person]string{
		First:        "(πρῶτον πρόσωπον)<br>ἐγώ",
		Second:       "(δεύτερον πρόσωπον)<br>σύ",
		Third:        "(τρίτον πρόσωπον)<br>ἐκεῖνος",
		SecondDual:   "(δεύτερον δυϊκὸν πρόσωπον)<br>σφώ",
		ThirdDual:    "(τρίτον δυϊκὸν πρόσωπον)<br>ἐκείνω",
		FirstPlural:  "ἡμεῖς",
		SecondPlural: "ὑμεῖς",
		ThirdPlural:  "σφεῖς",
	}
	voiceSymbols = map[Voice]string{
		Active:  "(ἐνεργετικός)<br>🏃 ",
		Middle:  "(μέσος)<br>🔁 ",
		Passive: "(παθητικός)<br>☔️ ",
	}
)

// VerbLabel renders the back of a verb card: person (when given), tense,
// mood and voice, one per line. The tense qualifier is dropped, so "1st
// aorist" and "2nd aorist" share a label. The participle mood has no
// rendering of its own and is left out.
func VerbLabel(v Voice, m Mood, t Tense, p Person) (string, error) {
	var parts []string
	if p != "" {
		sym, ok := personSymbols[p]
		if !ok {
			return "", fmt.Errorf("%w: person %q", ErrUnresolvable, p)
		}
		parts = append(parts, sym)
	}

	sym, ok := tenseSymbols[t.Base()]
	if !ok || !t.IsValid() {
		return "", fmt.Errorf("%w: tense %q", ErrUnresolvable, t)
	}
	parts = append(parts, sym)

	if m != Participle {
		sym, ok := moodSymbols[m]
		if !ok {
			return "", fmt.Errorf("%w: mood %q", ErrUnresolvable, m)
		}
		parts = append(parts, sym)
	}

	sym, ok = voiceSymbols[v]
	if !ok {
		return "", fmt.Errorf("%w: voice %q", ErrUnresolvable, v)
	}
	parts = append(parts, sym)

	return strings.Join(parts, lineBreak), nil
}

// ParticipleLabel renders the back of a participle card. Gender, number and
// case are only conveyed by the agreeing article.
func ParticipleLabel(v Voice, t Tense, g Gender, n Number, c Case) (string, error) {
	art, err := Article(g, n, c)
	if err != nil {
		return "", err
	}
	rest, err := VerbLabel(v, Participle, t, "")
	if err != nil {
		return "", err
	}
	return art + lineBreak + rest, nil
}
