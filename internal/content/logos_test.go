package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogoPath(t *testing.T) {
	tests := []struct {
		name string
		org  string
		want string
	}{
		{"mapped", "Department of Science and Technology", "/logos/dost.png"},
		{"mapped short", "Vercel", "/logos/vercel.png"},
		{"slug fallback", "DEPED", "/logos/deped.png"},
		{"slug with spaces", "Google Developer Students Club", "/logos/google-developer-students-club.png"},
		{"slug punctuation", "  The BLOKC!! (PH) ", "/logos/the-blokc-ph.png"},
		{"case sensitive map", "FreeCodeCamp", "/logos/freecodecamp.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LogoPath(tt.org))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "icp-philippines", Slug("ICP Philippines"))
	assert.Equal(t, "a-b", Slug("--a---b--"))
	assert.Equal(t, "", Slug("!!!"))
}

func TestPlaceholderURL(t *testing.T) {
	assert.Equal(t, "https://via.placeholder.com/40?text=D", PlaceholderURL("DataCamp"))
	assert.Equal(t, "https://via.placeholder.com/40?text=L", PlaceholderURL(" Luke"))
	assert.Equal(t, "https://via.placeholder.com/40?text=%3F", PlaceholderURL(""))
	assert.Equal(t, "https://via.placeholder.com/40?text=%C3%89", PlaceholderURL("École"))
}
