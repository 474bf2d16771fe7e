package nvgrid

// Item describes one styled run produced by itemization: a maximal
// horizontal span of columns sharing a single attribute set, located
// both in columns and in the flattened text.
type Item struct {
	StartCol int
	Cols     int

	// Offset and Length are rune offsets into the StyledLine text.
	Offset int
	Length int

	Attrs Attrs
}

// Itemize partitions a line into styled runs: adjacent non-blank cells
// with identical attributes merge into one item, continuation columns
// extend the item of their lead glyph, and blank unstyled cells stay
// outside every item. The resulting items are contiguous within
// themselves, non-overlapping, and ordered left to right.
func Itemize(l *Line, s *StyledLine) []Item {
	var items []Item
	cols := l.Len()

	for col := 0; col < cols; {
		cell := l.Cell(col)
		if cell.isBlank() || cell.IsContinuation() {
			// Continuation columns only appear behind their lead glyph,
			// which has already consumed them below.
			col++
			continue
		}

		item := Item{
			StartCol: col,
			Offset:   s.RuneOfCol[col],
			Attrs:    cell.Attrs,
		}

		for col < cols {
			c := l.Cell(col)
			if c.IsContinuation() && c.Attrs == item.Attrs {
				item.Cols++
				col++
				continue
			}
			if c.isBlank() || c.Attrs != item.Attrs {
				break
			}
			item.Cols++
			item.Length++
			col++
		}
		items = append(items, item)
	}
	return items
}

// merge installs a freshly itemized partition into the line's run
// arena, carrying over the shaped glyphs of any run whose span, text
// and attributes are unchanged. Old runs not matched by a new item are
// dropped with their cached glyphs; their index entries are cleared
// rather than mutated in place.
func (l *Line) merge(s *StyledLine, items []Item) {
	old := l.runs
	runs := make([]Run, len(items))

	for i, item := range items {
		text := string(s.Text[item.Offset : item.Offset+item.Length])
		runs[i] = Run{
			StartCol: item.StartCol,
			Cols:     item.Cols,
			Offset:   item.Offset,
			Length:   item.Length,
			Attrs:    item.Attrs,
			Text:     text,
		}
		// Cache hit: identical span in the previous partition keeps its
		// shaped glyphs, so untouched runs are never reshaped.
		for j := range old {
			prev := &old[j]
			if prev.StartCol == item.StartCol &&
				prev.Cols == item.Cols &&
				prev.Text == text &&
				prev.Attrs == item.Attrs &&
				prev.Glyphs != nil {
				runs[i].Glyphs = prev.Glyphs
				break
			}
		}
	}

	l.runs = runs
	for col := range l.itemIndex {
		l.itemIndex[col] = -1
	}
	for i := range runs {
		r := &runs[i]
		for c := r.StartCol; c < r.StartCol+r.Cols && c < len(l.itemIndex); c++ {
			l.itemIndex[c] = i
		}
	}
}
