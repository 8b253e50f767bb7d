package service

import (
	"crm/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateContactQR renders a client's contact card as a PNG QR code
	GenerateContactQR(client *entity.Client) ([]byte, error)
}
