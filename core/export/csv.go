// Package export renders already-loaded list pages into downloadable files.
// Generation is entirely client-side; no server round-trip is involved.
package export

import (
	"strings"
	"time"
)

// CSV renders a header row plus one row per record. Every cell is
// double-quoted unconditionally so embedded commas survive; inner quotes
// are doubled per RFC 4180.
func CSV(header []string, rows [][]string) []byte {
	var b strings.Builder
	writeRow(&b, header)
	for _, row := range rows {
		writeRow(&b, row)
	}
	return []byte(b.String())
}

func writeRow(b *strings.Builder, row []string) {
	for i, cell := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// Filename builds the download name for a resource export:
// <resource>-export_<ISO-date>.<ext>
func Filename(resource, ext string, now time.Time) string {
	return resource + "-export_" + now.Format("2006-01-02") + "." + ext
}
