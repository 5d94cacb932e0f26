package toc

// Page is one TOC page. Rows always has Layout.Rows elements; each row holds
// only the cells whose index falls inside the entry list.
type Page struct {
	Number int              `json:"number" yaml:"number"`
	Rows   [][]CountedEntry `json:"rows" yaml:"rows"`
}

// GridIndex maps a cell on a TOC page to its index in the counted entries.
// Cells are filled column-major.
func GridIndex(row, col, page int, l Layout) int {
	return row + col*l.Rows + l.PerPage()*page
}

// Pages splits counted entries into TOC pages numbered from 1.
func Pages(counted []CountedEntry, l Layout) []Page {
	n := PageCount(len(counted), l)
	pages := make([]Page, 0, n)

	for page := 0; page < n; page++ {
		p := Page{Number: page + 1, Rows: make([][]CountedEntry, l.Rows)}
		for row := 0; row < l.Rows; row++ {
			cells := make([]CountedEntry, 0, l.Cols)
			for col := 0; col < l.Cols; col++ {
				if idx := GridIndex(row, col, page, l); idx < len(counted) {
					cells = append(cells, counted[idx])
				}
			}
			p.Rows[row] = cells
		}
		pages = append(pages, p)
	}

	return pages
}
