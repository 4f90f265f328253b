package models

import "time"

// ReservationForm carries the raw values posted by the reservation form
type ReservationForm struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests string `json:"guests"`
	Notes  string `json:"notes,omitempty"`
}

// Reservation is a validated table request handed to the submission handler
type Reservation struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Guests     int       `json:"guests"`
	Notes      string    `json:"notes,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// QuoteRequest asks for the price of an entry with a set of customizations.
// Selections maps modifier group IDs to the chosen option IDs.
type QuoteRequest struct {
	Selections map[string][]string `json:"selections"`
}

// Quote is the computed price of a customized entry
type Quote struct {
	ItemID         string `json:"itemId"`
	BasePrice      string `json:"basePrice"`
	Total          string `json:"total"`
	FormattedTotal string `json:"formattedTotal"`
}
