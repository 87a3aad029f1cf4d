// Package anki writes the tab-separated import file consumed by Anki's
// file importer, plus the failed-entries analysis report.
package anki

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rozenlab/glosscard/internal/domain"
)

// NoteType is the fixed note type name written into column 1 of every row.
const NoteType = "医学英语V2"

// header is the fixed directive block Anki reads before the data rows.
var header = []string{
	"#separator:tab",
	"#html:true",
	"#notetype column:1",
	"#deck column:2",
	"#tags column:8",
}

// WriteDeck writes the import header and one row per record to w. Each row
// has exactly eight tab-separated fields: note type, deck, English term,
// Chinese term, two empty fields, image tag, chapter tag.
func WriteDeck(w io.Writer, records []domain.Record, deckName string) error {
	bw := bufio.NewWriter(w)

	for _, line := range header {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for _, r := range records {
		_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t\t\t%s\t%s\n",
			NoteType, deckName, r.EnglishTerm, r.ChineseTerm, r.ImageTag, r.ChapterTag)
		if err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	return bw.Flush()
}

// WriteDeckFile writes the deck to path, creating or truncating it.
func WriteDeckFile(path string, records []domain.Record, deckName string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create deck file: %w", err)
	}
	defer f.Close()

	if err := WriteDeck(f, records, deckName); err != nil {
		return err
	}
	return f.Close()
}
