package ankigreek

import "strings"

const (
	// movableNu marks an optional word-final ν: "λύουσι(ν)".
	movableNu = "(ν)"
	// lateMarker flags a rarer late variant printed next to a form.
	lateMarker = "(late)"
	// alternativeMark separates alternative tokens of a nominal form.
	alternativeMark = "/"
	// alternativeSep separates alternatives of a verbal form, which may
	// themselves contain spaces ("λελυκὼς ᾖς / λελύκῃς").
	alternativeSep = " / "
)

// ExpandNominal turns one raw noun cell into the forms a card may show.
//
// The cell is split on white space; "/" and "(late)" are dropped; a token
// wrapped in parentheses (an older, uncontracted spelling printed beside
// the later one) is unwrapped and kept; a token ending in "(ν)" yields the
// form without and with the final ν; a trailing comma is dropped. A leading
// article is removed from every alternative first.
// The result keeps first-occurrence order and holds no duplicates; an empty
// cell yields nothing.
func ExpandNominal(raw string) []string {
	raw = collapseSpace(NFC(raw))
	if raw == "" {
		return nil
	}
	raw = stripArticle(raw)

	var out []string
	for _, tok := range strings.Fields(raw) {
		if tok == alternativeMark || tok == lateMarker {
			continue
		}
		tok = unwrapParens(strings.TrimSuffix(tok, ","))
		if tok == "" {
			continue
		}
		out = append(out, movableNuVariants(tok)...)
	}
	return unique(out)
}

// ExpandVerbal turns one raw verb cell into the forms a card may show.
// Alternatives are separated by " / " and kept whole, so periphrastic forms
// survive; "(late)" markers are dropped and other parentheses are left
// alone.
func ExpandVerbal(raw string) []string {
	raw = collapseSpace(NFC(raw))
	if raw == "" {
		return nil
	}

	var out []string
	for _, alt := range strings.Split(raw, alternativeSep) {
		alt = collapseSpace(strings.ReplaceAll(alt, lateMarker, ""))
		if alt == "" || alt == alternativeMark {
			continue
		}
		out = append(out, movableNuVariants(alt)...)
	}
	return unique(out)
}

// unwrapParens strips one pair of parentheses when the opening one at the
// start is closed by the one at the end: "(νόος)" → "νόος", while
// "(α)β(γ)" is left untouched.
func unwrapParens(tok string) string {
	if len(tok) < 2 || tok[0] != '(' || tok[len(tok)-1] != ')' {
		return tok
	}
	depth := 0
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(tok)-1 {
				return tok
			}
		}
	}
	if depth != 0 {
		return tok
	}
	return tok[1 : len(tok)-1]
}

// movableNuVariants expands "stem(ν)" into "stem" and "stemν".
func movableNuVariants(tok string) []string {
	stem, ok := strings.CutSuffix(tok, movableNu)
	if !ok || stem == "" {
		return []string{tok}
	}
	return []string{stem, stem + "ν"}
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
