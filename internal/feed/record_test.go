// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"testing"

	"github.com/mmcdole/gofeed/atom"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{"line one\nline two", "line one line two"},
		{"crlf\r\nbreak", "crlf break"},
		{"\n leading and trailing \n", "leading and trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeText(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeText(got), "normalisation must be idempotent")
		})
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		published string
		want      string
	}{
		{"2021-06-01T00:00:00Z", "2021"},
		{"", ""},
		{"199", "199"},
		{"June 2020", "June"},
	}
	for _, tt := range tests {
		t.Run(tt.published, func(t *testing.T) {
			assert.Equal(t, tt.want, Year(tt.published))
		})
	}
}

func TestToRecord_MissingFields(t *testing.T) {
	r := ToRecord(&atom.Entry{}, "Economics")
	assert.Equal(t, "", r.Title)
	assert.Equal(t, "", r.Abstract)
	assert.Equal(t, "", r.Authors)
	assert.Equal(t, "", r.Year)
	assert.Equal(t, "", r.URL)
	assert.Equal(t, "Economics", r.Domain)
	assert.Equal(t, Source, r.Source)
}

func TestToRecord_FirstLinkWins(t *testing.T) {
	e := &atom.Entry{
		Title:     "T",
		Published: "2019-01-01T00:00:00Z",
		Authors:   []*atom.Person{{Name: "A"}, nil, {Name: "B"}},
		Links: []*atom.Link{
			{Href: "http://arxiv.org/abs/1901.00001v1", Rel: "alternate"},
			{Href: "http://arxiv.org/pdf/1901.00001v1", Rel: "related"},
		},
	}
	r := ToRecord(e, "Statistics")
	assert.Equal(t, "http://arxiv.org/abs/1901.00001v1", r.URL)
	assert.Equal(t, "A, B", r.Authors)
	assert.Equal(t, "2019", r.Year)
}
