package httpcsv

import (
	"net/url"
	"regexp"
	"strings"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// ToExportURL rewrites a Google Sheets edit or open link to its CSV export
// link, keeping the gid. Export links, other hosts and unparsable input are
// returned unchanged.
func ToExportURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}

	q := u.Query()
	if q.Get("output") == "csv" || strings.Contains(u.Path, "/export") {
		return raw
	}
	if !strings.Contains(u.Hostname(), "docs.google.com") {
		return raw
	}

	if strings.Contains(u.Path, "/spreadsheets/") {
		if m := spreadsheetIDPattern.FindStringSubmatch(u.Path); m != nil {
			return exportURL(m[1], gid(u))
		}
	}

	if strings.Contains(u.Path, "/open") {
		if id := q.Get("id"); id != "" {
			return exportURL(id, gid(u))
		}
	}

	return raw
}

// gid reads the sheet tab id from the query, or from the fragment of an
// edit link ("#gid=123").
func gid(u *url.URL) string {
	if g := u.Query().Get("gid"); g != "" {
		return g
	}
	if frag, err := url.ParseQuery(u.Fragment); err == nil {
		return frag.Get("gid")
	}
	return ""
}

func exportURL(id, gid string) string {
	base := "https://docs.google.com/spreadsheets/d/" + id + "/export?format=csv"
	if gid != "" {
		return base + "&gid=" + url.QueryEscape(gid)
	}
	return base
}
