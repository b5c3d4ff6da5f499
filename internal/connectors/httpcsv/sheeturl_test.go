package httpcsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToExportURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "edit link",
			in:   "https://docs.google.com/spreadsheets/d/1AbC-d_9/edit",
			want: "https://docs.google.com/spreadsheets/d/1AbC-d_9/export?format=csv",
		},
		{
			name: "edit link with gid query",
			in:   "https://docs.google.com/spreadsheets/d/1AbC/edit?gid=42",
			want: "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=42",
		},
		{
			name: "edit link with gid fragment",
			in:   "https://docs.google.com/spreadsheets/d/1AbC/edit#gid=7",
			want: "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=7",
		},
		{
			name: "open link",
			in:   "https://docs.google.com/open?id=XYZ&gid=3",
			want: "https://docs.google.com/spreadsheets/d/XYZ/export?format=csv&gid=3",
		},
		{
			name: "published csv passes through",
			in:   "https://docs.google.com/spreadsheets/d/e/2PACX/pub?output=csv",
			want: "https://docs.google.com/spreadsheets/d/e/2PACX/pub?output=csv",
		},
		{
			name: "export link passes through",
			in:   "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=1",
			want: "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=1",
		},
		{
			name: "other host passes through",
			in:   "https://cdn.example.com/catalog.csv",
			want: "https://cdn.example.com/catalog.csv",
		},
		{
			name: "unparsable passes through",
			in:   "::not a url",
			want: "::not a url",
		},
		{
			name: "relative path passes through",
			in:   "data/catalog.csv",
			want: "data/catalog.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToExportURL(tt.in))
		})
	}
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML([]byte("<!DOCTYPE html><html><body>Sign in</body></html>")))
	assert.True(t, LooksLikeHTML([]byte("\n  <HTML lang=en>")))
	assert.True(t, LooksLikeHTML([]byte("<!doctype html>")))
	assert.False(t, LooksLikeHTML([]byte("product_name,status\nChair,Active\n")))
	assert.False(t, LooksLikeHTML([]byte("overview_content\n\"<p>html fragment</p>\"")))
}
