package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes for vendor share links.
type QRCodeService interface {
	// VendorShareURL returns the public URL of a vendor's marketplace page.
	VendorShareURL(vendorID uuid.UUID) string

	// GenerateVendorQR renders the vendor's share URL as a PNG QR code.
	GenerateVendorQR(vendorID uuid.UUID) ([]byte, error)

	// ParseVendorQR extracts the vendor ID from scanned QR content.
	ParseVendorQR(qrData string) (uuid.UUID, error)
}
