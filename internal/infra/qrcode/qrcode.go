// Package qrcode renders payment URLs as scannable QR codes.
package qrcode

import (
	"starfund/internal/domain/service"
	"starfund/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance.
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
		size = 256
	}

	return &qrcodeService{size: size, level: level}
}

// PaymentPNG renders the URL as a PNG image.
func (s *qrcodeService) PaymentPNG(url string) ([]byte, error) {
	code, err := qrcode.New(url, s.level)
	if err != nil {
		return nil, errors.Wrap(err, "create qr code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "render qr png")
	}

	return png, nil
}

// PaymentText renders the URL as a terminal-printable QR block.
func (s *qrcodeService) PaymentText(url string) (string, error) {
	code, err := qrcode.New(url, s.level)
	if err != nil {
		return "", errors.Wrap(err, "create qr code")
	}

	return code.ToSmallString(false), nil
}
