// Package prefs holds the travel options that accompany a booking link.
package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// BahnCard is the loyalty discount card tier.
type BahnCard string

const (
	BahnCardNone BahnCard = "none"
	BahnCard25   BahnCard = "25"
	BahnCard50   BahnCard = "50"
)

// TravelClass is the seating class. Values are the wire values "1" and "2".
type TravelClass string

const (
	FirstClass  TravelClass = "1"
	SecondClass TravelClass = "2"
)

// MaxAge is the upper bound the form enforces for PassengerAge.
const MaxAge = 120

// Preferences is a snapshot of the travel options.
type Preferences struct {
	BahnCard             BahnCard    `json:"bahnCard"`
	HasDeutschlandTicket bool        `json:"hasDeutschlandTicket"`
	PassengerAge         *int        `json:"passengerAge,omitempty"` // nil until the user enters an age
	TravelClass          TravelClass `json:"travelClass"`
}

// Defaults returns the options a new session starts with.
func Defaults() Preferences {
	return Preferences{
		BahnCard:             BahnCardNone,
		HasDeutschlandTicket: false,
		TravelClass:          SecondClass,
	}
}

// AgeString renders the age the way the downstream page expects it: the
// decimal number, or an empty string when unset.
func (p Preferences) AgeString() string {
	if p.PassengerAge == nil {
		return ""
	}
	return strconv.Itoa(*p.PassengerAge)
}

// Clone returns a copy that shares no memory with p.
func (p Preferences) Clone() Preferences {
	if p.PassengerAge != nil {
		age := *p.PassengerAge
		p.PassengerAge = &age
	}
	return p
}

// Partial is a one-or-more field update. Nil fields are left unchanged.
type Partial struct {
	BahnCard             *BahnCard
	HasDeutschlandTicket *bool
	PassengerAge         *int
	ClearAge             bool // unset PassengerAge; wins over PassengerAge
	TravelClass          *TravelClass
}

// Empty reports whether the update carries no field.
func (u Partial) Empty() bool {
	return u.BahnCard == nil && u.HasDeutschlandTicket == nil && u.PassengerAge == nil &&
		!u.ClearAge && u.TravelClass == nil
}

// WithBahnCard returns a Partial that sets only the BahnCard tier.
func WithBahnCard(v BahnCard) Partial { return Partial{BahnCard: &v} }

// WithDeutschlandTicket returns a Partial that sets only the regional pass flag.
func WithDeutschlandTicket(v bool) Partial { return Partial{HasDeutschlandTicket: &v} }

// WithAge returns a Partial that sets only the passenger age.
func WithAge(v int) Partial { return Partial{PassengerAge: &v} }

// WithoutAge returns a Partial that clears the passenger age.
func WithoutAge() Partial { return Partial{ClearAge: true} }

// WithTravelClass returns a Partial that sets only the travel class.
func WithTravelClass(v TravelClass) Partial { return Partial{TravelClass: &v} }

// Validate applies the form bounds: known BahnCard tier, known travel class
// and an age within 0..MaxAge. The Store and the query composer never call
// it; front ends do, before they submit.
func Validate(p Preferences) error {
	switch p.BahnCard {
	case BahnCardNone, BahnCard25, BahnCard50:
	default:
		return fmt.Errorf("invalid BahnCard %q: want none, 25 or 50", p.BahnCard)
	}
	switch p.TravelClass {
	case FirstClass, SecondClass:
	default:
		return fmt.Errorf("invalid travel class %q: want 1 or 2", p.TravelClass)
	}
	if p.PassengerAge != nil && (*p.PassengerAge < 0 || *p.PassengerAge > MaxAge) {
		return fmt.Errorf("invalid passenger age %d: want 0-%d", *p.PassengerAge, MaxAge)
	}
	return nil
}

// ParseBahnCard maps user input to a tier. It accepts the wire values as well
// as "bc25", "bahncard 50", "keine" and similar spellings.
func ParseBahnCard(s string) (BahnCard, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(v)
	v = strings.TrimPrefix(v, "bahncard")
	v = strings.TrimPrefix(v, "bc")

	switch v {
	case "", "none", "no", "keine", "0":
		return BahnCardNone, nil
	case "25":
		return BahnCard25, nil
	case "50":
		return BahnCard50, nil
	}
	return "", fmt.Errorf("unknown BahnCard %q: want none, 25 or 50", s)
}

// ParseTravelClass maps user input to a class: "1", "first", "erste" and
// "2", "second", "zweite".
func ParseTravelClass(s string) (TravelClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "first", "1st", "erste":
		return FirstClass, nil
	case "2", "second", "2nd", "zweite":
		return SecondClass, nil
	}
	return "", fmt.Errorf("unknown travel class %q: want 1 or 2", s)
}

// ParseAge parses a decimal age. An empty string means unset.
func ParseAge(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger age %q: %w", s, err)
	}
	return &n, nil
}

// Label returns the form label of the tier.
func (b BahnCard) Label() string {
	switch b {
	case BahnCardNone:
		return "Keine BahnCard"
	case BahnCard25:
		return "BahnCard 25"
	case BahnCard50:
		return "BahnCard 50"
	}
	return string(b)
}

// Label returns the form label of the class.
func (c TravelClass) Label() string {
	switch c {
	case FirstClass:
		return "Erste Klasse"
	case SecondClass:
		return "Zweite Klasse"
	}
	return string(c)
}

// BahnCardOptions lists the tiers in form order.
func BahnCardOptions() []BahnCard {
	return []BahnCard{BahnCardNone, BahnCard25, BahnCard50}
}

// TravelClassOptions lists the classes in form order.
func TravelClassOptions() []TravelClass {
	return []TravelClass{FirstClass, SecondClass}
}
