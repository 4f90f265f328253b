package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_MenuLinksPointToOrderingPlatform(t *testing.T) {
	c := Default("Nova", "https://orders.example.com/nova")

	assert.Equal(t, "Nova", c.Name)
	assert.Equal(t, "https://orders.example.com/nova", c.OrderURL)

	for _, links := range [][]NavLink{c.NavLinks, c.FooterLinks} {
		found := false
		for _, l := range links {
			if l.Label == "Menu" {
				found = true
				assert.Equal(t, c.OrderURL, l.Href)
				assert.True(t, l.External)
			} else {
				assert.False(t, l.External, l.Label)
			}
		}
		assert.True(t, found, "menu link missing")
	}
}

func TestDefault_Sections(t *testing.T) {
	c := Default("Nova", "https://orders.example.com")

	assert.Len(t, c.Features, 3)
	assert.Len(t, c.Gallery, 6)
	assert.Len(t, c.Hours, 3)
	assert.Equal(t, "Sunday", c.Hours[2].Days)
	assert.NotEmpty(t, c.Location.Phone)
}
