// Package qrcode renders vendor share links as QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const vendorPathPrefix = "/vendors/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	shareBaseURL         string
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.ShareBaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, shareBaseURL string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		shareBaseURL:         strings.TrimRight(shareBaseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// VendorShareURL returns the public URL of a vendor's marketplace page.
func (s *qrcodeService) VendorShareURL(vendorID uuid.UUID) string {
	return s.shareBaseURL + vendorPathPrefix + vendorID.String()
}

// GenerateVendorQR renders the vendor's share URL as a PNG QR code.
func (s *qrcodeService) GenerateVendorQR(vendorID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.VendorShareURL(vendorID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseVendorQR extracts the vendor ID from a scanned share URL.
func (s *qrcodeService) ParseVendorQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code content")
	}

	idx := strings.LastIndex(parsed.Path, vendorPathPrefix)
	if idx < 0 {
		return uuid.Nil, errors.Errorf("QR code does not point to a vendor page: %s", qrData)
	}

	vendorID, err := uuid.Parse(parsed.Path[idx+len(vendorPathPrefix):])
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse vendor ID")
	}

	return vendorID, nil
}
