package qrcode

import (
	"strings"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length used when none is configured.
const DefaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
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
		size = DefaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactQR encodes the client as a vCard so phones can add it as a contact
func (s *qrcodeService) GenerateContactQR(client *entity.Client) ([]byte, error) {
	if client == nil || strings.TrimSpace(client.Name) == "" {
		return nil, errors.New("client name is required for a contact card")
	}

	qrCode, err := qrcode.New(VCard(client), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// VCard renders a vCard 3.0 payload for the client
func VCard(client *entity.Client) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")
	b.WriteString("FN:" + escapeVCard(client.Name) + "\r\n")
	b.WriteString("N:" + escapeVCard(client.Name) + ";;;;\r\n")
	if client.Phone != "" {
		b.WriteString("TEL;TYPE=CELL:" + escapeVCard(client.Phone) + "\r\n")
	}
	if client.Email != "" {
		b.WriteString("EMAIL:" + escapeVCard(client.Email) + "\r\n")
	}
	if client.Note != "" {
		b.WriteString("NOTE:" + escapeVCard(client.Note) + "\r\n")
	}
	b.WriteString("END:VCARD\r\n")

	return b.String()
}

//nolint:gochecknoglobals
var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\n", `\n`,
	",", `\,`,
	";", `\;`,
)

func escapeVCard(value string) string {
	return vcardEscaper.Replace(value)
}
