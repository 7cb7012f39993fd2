package cv

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Glyph runs closer than these distances (PDF user-space units) are
// treated as the same word and the same line respectively.
const (
	pdfXTolerance = 2.0
	pdfYTolerance = 2.0
)

func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Format: DocumentPDF, Message: "decoder panic", Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: DocumentPDF, Message: "failed to open", Cause: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if t := layoutText(page.Content().Text); t != "" {
			pages = append(pages, t)
		}
	}
	return strings.Join(pages, "\n"), nil
}

type glyphRow struct {
	y      float64
	glyphs []pdf.Text
}

// layoutText rebuilds reading order from positioned glyph runs: runs are
// grouped into rows by baseline, rows go top to bottom, runs within a row
// left to right, and a space is inserted where the horizontal gap exceeds
// the tolerance.
func layoutText(runs []pdf.Text) string {
	var rows []*glyphRow
	for _, run := range runs {
		if run.S == "" {
			continue
		}
		var row *glyphRow
		for _, r := range rows {
			if math.Abs(r.y-run.Y) <= pdfYTolerance {
				row = r
				break
			}
		}
		if row == nil {
			row = &glyphRow{y: run.Y}
			rows = append(rows, row)
		}
		row.glyphs = append(row.glyphs, run)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row.glyphs, func(i, j int) bool { return row.glyphs[i].X < row.glyphs[j].X })

		var b strings.Builder
		var end float64
		for i, g := range row.glyphs {
			if i > 0 && g.X-end > pdfXTolerance {
				cur := b.String()
				if !strings.HasSuffix(cur, " ") && !strings.HasPrefix(g.S, " ") {
					b.WriteByte(' ')
				}
			}
			b.WriteString(g.S)
			end = g.X + g.W
		}
		if line := strings.TrimSpace(b.String()); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
