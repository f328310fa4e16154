// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"strings"

	"github.com/mmcdole/gofeed/atom"

	"github.com/pdiddy/paper-harvester/pkg/types"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// ToRecord maps one Atom entry to a PaperRecord. Missing fields become
// empty strings; it never fails.
func ToRecord(e *atom.Entry, domain string) types.PaperRecord {
	r := types.PaperRecord{
		Title:    NormalizeText(e.Title),
		Abstract: NormalizeText(e.Summary),
		Authors:  joinAuthors(e.Authors),
		Year:     Year(e.Published),
		Source:   Source,
		Domain:   domain,
	}
	for _, l := range e.Links {
		if l != nil {
			r.URL = l.Href
			break
		}
	}
	return r
}

// NormalizeText folds line breaks into single spaces and trims the result.
// Applying it twice gives the same string as applying it once.
func NormalizeText(s string) string {
	return strings.TrimSpace(lineBreaks.Replace(s))
}

// Year returns the first four characters of a published timestamp. The
// value is not validated; a string shorter than four characters is
// returned whole.
func Year(published string) string {
	r := []rune(published)
	if len(r) <= 4 {
		return published
	}
	return string(r[:4])
}

func joinAuthors(people []*atom.Person) string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		if p == nil {
			continue
		}
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
