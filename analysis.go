package ankigreek

// Kind is the part of speech of a paradigm.
type Kind string

const (
	KindNoun Kind = "noun"
	KindVerb Kind = "verb"
)

// Analysis is one reading of a word form.
type Analysis struct {
	// Form is the form as tabulated, with its accents and length marks.
	Form string `json:"form"`
	// Headword is the citation form of a noun or the lemma of a verb.
	Headword string `json:"headword"`
	Kind     Kind   `json:"kind"`
	// Description names the cell, e.g. "genitive singular" or
	// "active indicative present 1st".
	Description string `json:"description"`
}

// LemmatizationResult holds the readings of one token of a text.
type LemmatizationResult struct {
	Token    string     `json:"token"`
	Analyses []Analysis `json:"analyses"`
}
