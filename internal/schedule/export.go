package schedule

import (
	"fmt"
	"strings"
)

// ExportRows flattens a projected grid into spreadsheet rows: a header row
// (date, weekday, one column per member) followed by one row per day of the
// month. In-cell line break markers become single spaces; a non-empty note
// is appended in parentheses.
func ExportRows(m Month, members []Member, grid Grid) [][]string {
	header := make([]string, 0, len(members)+2)
	header = append(header, "日期", "星期")
	for _, mb := range members {
		header = append(header, mb.Name)
	}

	rows := make([][]string, 0, m.Days()+1)
	rows = append(rows, header)
	for day := 1; day <= m.Days(); day++ {
		row := make([]string, 0, len(members)+2)
		row = append(row, fmt.Sprintf("%d/%d", m.Month, day), m.WeekdayShort(day))
		for _, mb := range members {
			cell := grid.Cell(day, mb.ID)
			if cell == nil {
				row = append(row, "")
				continue
			}
			text := flattenBreaks(cell.Status)
			if cell.Note != "" {
				text += " (" + flattenBreaks(cell.Note) + ")"
			}
			row = append(row, text)
		}
		rows = append(rows, row)
	}
	return rows
}

// ExportFilename names the download for one team's monthly export.
func ExportFilename(team string, m Month) string {
	return fmt.Sprintf("班表_%s_%s", team, m.Prefix())
}

func flattenBreaks(s string) string {
	return strings.ReplaceAll(s, LineBreak, " ")
}
