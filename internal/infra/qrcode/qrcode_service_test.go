package qrcode

import (
	"testing"

	"crm/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClient() *entity.Client {
	return &entity.Client{
		ID:    "c-1",
		Name:  "Ana Pérez",
		Email: "ana@example.com",
		Phone: "+52 55 1234 5678",
		Note:  "Prefiere llamadas, no mensajes; tarde",
	}
}

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

func TestQRCodeService_GenerateContactQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateContactQR(sampleClient())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateContactQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateContactQR(sampleClient())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateContactQR_RequiresName(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateContactQR(&entity.Client{Email: "x@example.com"})
	assert.Error(t, err)

	_, err = service.GenerateContactQR(nil)
	assert.Error(t, err)
}

func TestVCard(t *testing.T) {
	card := VCard(sampleClient())

	assert.Contains(t, card, "BEGIN:VCARD\r\n")
	assert.Contains(t, card, "FN:Ana Pérez\r\n")
	assert.Contains(t, card, "TEL;TYPE=CELL:+52 55 1234 5678\r\n")
	assert.Contains(t, card, "EMAIL:ana@example.com\r\n")
	assert.Contains(t, card, `NOTE:Prefiere llamadas\, no mensajes\; tarde`)
	assert.Contains(t, card, "END:VCARD\r\n")
}

func TestVCard_OmitsEmptyFields(t *testing.T) {
	card := VCard(&entity.Client{Name: "Solo Nombre"})

	assert.NotContains(t, card, "TEL")
	assert.NotContains(t, card, "EMAIL")
	assert.NotContains(t, card, "NOTE")
}
