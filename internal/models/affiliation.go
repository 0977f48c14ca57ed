package models

// Affiliation represents an organization membership
type Affiliation struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// AffiliationList wraps the array of affiliations
type AffiliationList struct {
	Affiliations []Affiliation `json:"affiliations"`
}
