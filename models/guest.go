package models

// Address is replaced wholesale on update, never merged field by field.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Guest struct {
	GuestID string  `json:"guestId"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`

	// duplicates are avoided by callers, not rejected here
	Preferences []string `json:"preferences"`

	// ids of past bookings; starts empty on create
	BookingHistory []string `json:"bookingHistory"`
}

// Clone returns a copy that shares no slices with g.
func (g Guest) Clone() Guest {
	out := g
	out.Preferences = cloneStrings(g.Preferences)
	out.BookingHistory = cloneStrings(g.BookingHistory)
	return out
}

// GuestPatch carries the fields of a partial update. Nil means "keep".
type GuestPatch struct {
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Address        *Address  `json:"address"`
	Preferences    *[]string `json:"preferences"`
	BookingHistory *[]string `json:"bookingHistory"`
}

// Apply merges p over g (shallow).
func (p GuestPatch) Apply(g *Guest) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
	if p.Phone != nil {
		g.Phone = *p.Phone
	}
	if p.Address != nil {
		g.Address = *p.Address
	}
	if p.Preferences != nil {
		g.Preferences = cloneStrings(*p.Preferences)
	}
	if p.BookingHistory != nil {
		g.BookingHistory = cloneStrings(*p.BookingHistory)
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
