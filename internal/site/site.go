// Package site holds the static content of the restaurant page outside the menu
package site

// Content is everything the page shows besides the menu
type Content struct {
	Name        string
	Tagline     string
	Subtitle    string
	OrderURL    string
	Story       []string
	Features    []Feature
	Gallery     []string
	Hours       []Hours
	Location    Location
	Social      []SocialLink
	Since       int
	Copyright   int
	NavLinks    []NavLink
	FooterLinks []NavLink
}

// Feature is one highlight in the about section
type Feature struct {
	Icon  string
	Title string
	Text  string
}

// Hours is an opening-hours line
type Hours struct {
	Days string
	Time string
}

// Location is the contact block of the "Find Us" card
type Location struct {
	Street string
	City   string
	Phone  string
	Email  string
}

// SocialLink is a footer icon link
type SocialLink struct {
	Label string
	Icon  string
	URL   string
}

// NavLink is a header or footer link. External links open in a new tab.
type NavLink struct {
	Label    string
	Href     string
	External bool
}

// Default returns the Nova content with the given restaurant name and
// external ordering URL
func Default(name, orderURL string) Content {
	menuLink := NavLink{Label: "Menu", Href: orderURL, External: true}

	return Content{
		Name:     name,
		Tagline:  "Welcome to Our Restaurant",
		Subtitle: "Experience the finest flavors crafted with passion and tradition",
		OrderURL: orderURL,
		Story: []string{
			"We are passionate about creating exceptional dining experiences. " +
				"Our commitment to quality ingredients, authentic flavors, and warm hospitality " +
				"has made us a beloved destination for food lovers.",
			"Every dish tells a story, and we invite you to be part of ours. " +
				"Whether you're joining us for a casual meal or a special celebration, " +
				"we're here to make every moment memorable.",
		},
		Features: []Feature{
			{Icon: "🍽️", Title: "Fresh Ingredients", Text: "Locally sourced, daily fresh"},
			{Icon: "👨‍🍳", Title: "Expert Chefs", Text: "Masterfully crafted dishes"},
			{Icon: "❤️", Title: "Made with Love", Text: "Every bite is special"},
		},
		Gallery: []string{"🍕", "🍝", "🍰", "🥗", "🍔", "🍹"},
		Hours: []Hours{
			{Days: "Monday - Thursday", Time: "11:00 AM - 10:00 PM"},
			{Days: "Friday - Saturday", Time: "11:00 AM - 11:00 PM"},
			{Days: "Sunday", Time: "12:00 PM - 9:00 PM"},
		},
		Location: Location{
			Street: "123 Main Street",
			City:   "City, State 12345",
			Phone:  "(555) 123-4567",
			Email:  "info@restaurantname.com",
		},
		Social: []SocialLink{
			{Label: "Facebook", Icon: "📘", URL: "#"},
			{Label: "Instagram", Icon: "📷", URL: "#"},
			{Label: "Twitter", Icon: "🐦", URL: "#"},
		},
		Since:     2020,
		Copyright: 2024,
		NavLinks: []NavLink{
			{Label: "Home", Href: "#home"},
			{Label: "About", Href: "#about"},
			menuLink,
			{Label: "Gallery", Href: "#gallery"},
			{Label: "Contact", Href: "#contact"},
		},
		FooterLinks: []NavLink{
			{Label: "Home", Href: "#home"},
			{Label: "About", Href: "#about"},
			menuLink,
			{Label: "Contact", Href: "#contact"},
		},
	}
}
