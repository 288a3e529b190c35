package qrcode

import (
	"encoding/json"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// MedicalIDType tags the payload so scanners can tell a medical ID card apart from other codes
const MedicalIDType = "medical_id"

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New creates the QR code service from configuration
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateMedicalID renders the profile and personal contacts as a PNG QR code
func (s *qrcodeService) GenerateMedicalID(profile *entity.UserProfile, contacts []*entity.Contact) ([]byte, error) {
	if profile == nil {
		return nil, errors.New("profile is required")
	}

	card := service.MedicalIDCard{
		Type:              MedicalIDType,
		Name:              profile.Name,
		BloodGroup:        profile.BloodGroup,
		MedicalConditions: profile.MedicalConditions,
		EmergencyNote:     profile.EmergencyNote,
		Contacts:          make([]service.MedicalIDPerson, 0, len(contacts)),
	}
	for _, contact := range contacts {
		if contact == nil || contact.IsEmergency {
			continue
		}
		card.Contacts = append(card.Contacts, service.MedicalIDPerson{Name: contact.Name, Phone: contact.Phone})
	}

	jsonData, err := json.Marshal(card)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal medical ID")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseMedicalID decodes the text payload of a scanned card
func (s *qrcodeService) ParseMedicalID(qrData string) (*service.MedicalIDCard, error) {
	var card service.MedicalIDCard
	if err := json.Unmarshal([]byte(qrData), &card); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if card.Type != MedicalIDType {
		return nil, errors.Errorf("invalid QR code type: %s", card.Type)
	}

	return &card, nil
}
