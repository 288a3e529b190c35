package qrcode

import (
	"testing"

	"guardian/config"
	"guardian/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNew_WithoutConfigSection(t *testing.T) {
	assert.NotNil(t, New(&config.Config{}))
}

func TestQRCodeService_GenerateMedicalID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateMedicalID(entity.DefaultProfile(), entity.DefaultContacts())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateMedicalID_NilProfile(t *testing.T) {
	_, err := NewQRCodeService(256, "M").GenerateMedicalID(nil, nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParseMedicalID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	card, err := service.ParseMedicalID(`{"type":"medical_id","name":"Jane Doe","blood_group":"O+","contacts":[{"name":"Family Member","phone":"+1234567890"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", card.Name)
	assert.Equal(t, "O+", card.BloodGroup)
	require.Len(t, card.Contacts, 1)
	assert.Equal(t, "+1234567890", card.Contacts[0].Phone)
}

func TestQRCodeService_ParseMedicalID_InvalidJSON(t *testing.T) {
	_, err := NewQRCodeService(256, "M").ParseMedicalID("invalid json")
	assert.ErrorContains(t, err, "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseMedicalID_InvalidType(t *testing.T) {
	_, err := NewQRCodeService(256, "M").ParseMedicalID(`{"type":"subscription"}`)
	assert.ErrorContains(t, err, "invalid QR code type")
}
