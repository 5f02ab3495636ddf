package prefs

// Store owns the preferences of one session. It is mutated only through
// Update and Reset and is not safe for concurrent writers; a session has
// exactly one.
type Store struct {
	current Preferences
}

// NewStore returns a store holding Defaults.
func NewStore() *Store {
	return &Store{current: Defaults()}
}

// Update merges the fields present in u into the current preferences and
// returns the result. Values are stored as given.
func (s *Store) Update(u Partial) Preferences {
	if u.BahnCard != nil {
		s.current.BahnCard = *u.BahnCard
	}
	if u.HasDeutschlandTicket != nil {
		s.current.HasDeutschlandTicket = *u.HasDeutschlandTicket
	}
	if u.ClearAge {
		s.current.PassengerAge = nil
	} else if u.PassengerAge != nil {
		age := *u.PassengerAge
		s.current.PassengerAge = &age
	}
	if u.TravelClass != nil {
		s.current.TravelClass = *u.TravelClass
	}
	return s.Current()
}

// Current returns a copy of the latest merged preferences.
func (s *Store) Current() Preferences {
	return s.current.Clone()
}

// Reset restores Defaults.
func (s *Store) Reset() {
	s.current = Defaults()
}
