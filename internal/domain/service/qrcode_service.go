package service

import "guardian/internal/domain/entity"

// MedicalIDCard is the payload encoded in the medical ID QR code
type MedicalIDCard struct {
	Type              string            `json:"type"`
	Name              string            `json:"name"`
	BloodGroup        string            `json:"blood_group"`
	MedicalConditions string            `json:"medical_conditions"`
	EmergencyNote     string            `json:"emergency_note"`
	Contacts          []MedicalIDPerson `json:"contacts"`
}

// MedicalIDPerson is a contact listed on the card
type MedicalIDPerson struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// QRCodeService defines the interface for medical ID QR generation and parsing
type QRCodeService interface {
	// GenerateMedicalID renders the profile and contacts as a PNG QR code
	GenerateMedicalID(profile *entity.UserProfile, contacts []*entity.Contact) ([]byte, error)

	// ParseMedicalID decodes the text payload of a scanned card
	ParseMedicalID(qrData string) (*MedicalIDCard, error)
}
