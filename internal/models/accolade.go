package models

import (
	"strconv"
	"strings"
)

// blankLink is how unlinked accolades are written in the data files.
const blankLink = "leave it blank"

// Accolade represents an award, certification or competition result
type Accolade struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Link         string `json:"link,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	Logo         string `json:"logo,omitempty"`
}

// AccoladeList wraps the array of accolades
type AccoladeList struct {
	Accolades []Accolade `json:"accolades"`
}

// YearValue returns the numeric year, or 0 when the year does not parse.
func (a Accolade) YearValue() int {
	y, err := strconv.Atoi(strings.TrimSpace(a.Year))
	if err != nil {
		return 0
	}
	return y
}

// DisplayIssuer returns the issuer override when present, otherwise the organization.
func (a Accolade) DisplayIssuer() string {
	if a.Issuer != "" {
		return a.Issuer
	}
	return a.Organization
}

// HasLink reports whether the accolade points somewhere real.
func (a Accolade) HasLink() bool {
	link := strings.TrimSpace(a.Link)
	return link != "" && !strings.EqualFold(link, blankLink)
}
