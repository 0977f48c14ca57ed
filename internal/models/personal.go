package models

// PersonalInfo holds the site owner's profile
type PersonalInfo struct {
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Slogan    string   `json:"slogan"`
	Languages []string `json:"languages"`
	Status    string   `json:"status"`
	School    string   `json:"school"`
	Email     string   `json:"email"`
	GitHub    string   `json:"github"`
	LinkedIn  string   `json:"linkedin"`
}
