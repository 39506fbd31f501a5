package ankigreek

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Table is the inflection grid found in a Wiktionary page.
type Table struct {
	// Gender is the gender word of the first gender marker on the page
	// ("masculine"), empty when there was none.
	Gender string
	// Columns are the header labels in order. Columns[0] heads the column
	// of row labels.
	Columns []string
	// Rows are the row labels in order of appearance.
	Rows []string
	// Grid maps row label → column label → cell text.
	Grid map[string]map[string]string
}

type scanState int

const (
	seekingTable scanState = iota
	headerRow
	dataRows
	tableDone
)

// maxCellLines bounds how far a cell split over several lines is followed.
const maxCellLines = 8

var (
	genderRe     = regexp.MustCompile(`<abbr title="([^"]*) gender">.</abbr>`)
	tableStartRe = regexp.MustCompile(`table.*inflection-table`)
	rowEndRe     = regexp.MustCompile(`</tr>`)
	tableEndRe   = regexp.MustCompile(`</table>`)
	cellOpenRe   = regexp.MustCompile(`<t[hd][\s>]`)
	cellCloseRe  = regexp.MustCompile(`</t[hd]>`)
	cellRe       = regexp.MustCompile(`(?s)<(th|td)(?:\s[^>]*)?>(.*?)</t[hd]>`)
	linkRe       = regexp.MustCompile(`(?s)<a(?:\s[^>]*)?>.*?</a>`)
	spanRe       = regexp.MustCompile(`(?s)<span(?:\s[^>]*)?>.*</span>`)
	brRe         = regexp.MustCompile(`<br\s*/?>`)
	supRe        = regexp.MustCompile(`(?s)<sup(?:\s[^>]*)?>.*?</sup>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
)

// ExtractTable scans markup line by line for the first inflection table.
//
// Header cells of the table's first row become the columns. In later rows a
// header cell starts a new row and data cells fill the columns left to
// right. A data cell is one holding a link or a span; other cells are not
// counted. Everything after the end of the table is ignored except for the
// gender marker. Nothing here fails: unexpected markup yields a smaller
// table.
func ExtractTable(markup string) Table {
	t := Table{Grid: make(map[string]map[string]string)}
	state := seekingTable
	row := ""
	cursor := 0

	lines := strings.Split(markup, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		for j := 1; j < maxCellLines && i+1 < len(lines) && openCells(line); j++ {
			i++
			line += " " + lines[i]
		}

		if t.Gender == "" {
			if m := genderRe.FindStringSubmatch(line); m != nil {
				t.Gender = m[1]
			}
		}

		switch state {
		case seekingTable:
			if tableStartRe.MatchString(line) {
				state = headerRow
			}
			continue
		case tableDone:
			continue
		}
		ended := tableEndRe.MatchString(line)

		switch state {
		case headerRow:
			for _, m := range cellRe.FindAllStringSubmatch(line, -1) {
				if m[1] == "th" {
					t.Columns = append(t.Columns, cellText(m[2]))
				}
			}
			if rowEndRe.MatchString(line) {
				state = dataRows
			}
		case dataRows:
			for _, m := range cellRe.FindAllStringSubmatch(line, -1) {
				if m[1] == "th" {
					row = cellText(m[2])
					cursor = 0
					if _, seen := t.Grid[row]; !seen {
						t.Rows = append(t.Rows, row)
						t.Grid[row] = make(map[string]string)
					}
					continue
				}
				if !isDataCell(m[2]) {
					continue
				}
				cursor++
				if row == "" || cursor >= len(t.Columns) {
					continue
				}
				t.Grid[row][t.Columns[cursor]] = cellText(m[2])
			}
		}

		if ended {
			state = tableDone
		}
	}
	return t
}

// openCells reports whether line opens more table cells than it closes.
func openCells(line string) bool {
	return len(cellOpenRe.FindAllStringIndex(line, -1)) > len(cellCloseRe.FindAllStringIndex(line, -1))
}

func isDataCell(inner string) bool {
	return linkRe.MatchString(inner) || spanRe.MatchString(inner)
}

// cellText reduces the inside of a cell to its text. Line breaks separate
// alternatives with " / ", as do several linked forms sharing a cell.
func cellText(inner string) string {
	s := supRe.ReplaceAllString(inner, "")
	if links := linkRe.FindAllString(s, -1); len(links) > 1 {
		var alts []string
		for _, l := range links {
			if t := plainText(l); t != "" {
				alts = append(alts, t)
			}
		}
		return strings.Join(alts, alternativeSep)
	}
	return plainText(s)
}

func plainText(s string) string {
	s = brRe.ReplaceAllString(s, alternativeSep)
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return collapseSpace(NFC(s))
}

// NounParadigm turns the grid into the paradigm of citation. Number labels
// may head either the columns or the rows. Cells whose labels are not a
// number and a case are skipped, as are empty ones; a table with no usable
// cell is ErrNoParadigm.
func (t Table) NounParadigm(citation string) (*NounParadigm, error) {
	p := NewNounParadigm(citation)
	p.Gender = t.Gender
	columns := unique(t.Columns)
	for _, row := range t.Rows {
		cells := t.Grid[row]
		for _, col := range columns {
			text, ok := cells[col]
			if !ok || text == "" {
				continue
			}
			n, c, ok := cellLabels(row, col)
			if !ok {
				continue
			}
			if err := p.Set(n, c, text); err != nil {
				return nil, err
			}
		}
	}
	if p.Len() == 0 {
		return nil, ErrNoParadigm
	}
	return p, nil
}

func cellLabels(row, col string) (Number, Case, bool) {
	if n, err := ParseNumber(col); err == nil {
		if c, err := ParseCase(row); err == nil {
			return n, c, true
		}
	}
	if n, err := ParseNumber(row); err == nil {
		if c, err := ParseCase(col); err == nil {
			return n, c, true
		}
	}
	return "", "", false
}
