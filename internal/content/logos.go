package content

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	logoDir        = "/logos/"
	placeholderURL = "https://via.placeholder.com/40?text="
)

var logoFiles = map[string]string{
	"Department of Education":                       "deped.png",
	"Department of Science and Technology":          "dost.png",
	"Southeast Asian Mathematical Olympiad Society": "seamo.png",
	"ICP Philippines":                               "icp.png",
	"freeCodeCamp":                                  "freecodecamp.png",
	"Vercel":                                        "vercel.png",
	"Amazon Web Services":                           "amazon.png",
	"University of the Philippines":                 "up.png",
	"De La Salle University":                        "dlsu.png",
	"Google":                                        "google.png",
	"DataCamp":                                      "datacamp.png",
	"World Computer Hacker League":                  "wchl.png",
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]`)
	dashRuns     = regexp.MustCompile(`-+`)
)

// LogoPath resolves the logo image for an organization. Organizations without
// an explicit mapping get a file named after their slug.
func LogoPath(organization string) string {
	if name, ok := logoFiles[organization]; ok {
		return logoDir + name
	}
	return logoDir + Slug(organization) + ".png"
}

// Slug lower-cases s, replaces everything outside [a-z0-9] with dashes,
// collapses dash runs and trims dashes from both ends.
func Slug(s string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(s), "-")
	slug = dashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// PlaceholderURL is the image shown when an entity's own image fails to load.
// It carries the first letter of the entity's name.
func PlaceholderURL(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return placeholderURL + url.QueryEscape("?")
	}
	return placeholderURL + url.QueryEscape(string(r))
}
