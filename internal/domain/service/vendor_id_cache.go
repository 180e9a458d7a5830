package service

import "github.com/google/uuid"

// VendorIDCache remembers the vendor profile ID resolved for a user.
type VendorIDCache interface {
	Get(userID uuid.UUID) (uuid.UUID, bool)
	Set(userID, vendorID uuid.UUID)
	Invalidate(userID uuid.UUID)
}
