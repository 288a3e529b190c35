package entity

// Contact is a trusted person notified in an emergency.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	IsEmergency bool   `json:"isEmergency"` // Marks a public emergency service rather than a personal contact.
}

// DefaultContacts returns the contacts used when nothing has been stored yet.
func DefaultContacts() []*Contact {
	return []*Contact{
		{ID: "1", Name: "Emergency Services", Phone: "911", IsEmergency: true},
		{ID: "2", Name: "Family Member", Phone: "+1234567890", IsEmergency: false},
	}
}
