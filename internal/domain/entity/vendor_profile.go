package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// VendorProfile is the business side of a vendor account, created during onboarding.
type VendorProfile struct {
	ID               uuid.UUID
	UserID           uuid.UUID // One-to-one with the owning user.
	BusinessName     string
	Description      string
	BusinessCategory string
	LogoURL          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CompletionFields returns the fields counted toward profile completion.
func (p *VendorProfile) CompletionFields() []string {
	if p == nil {
		return nil
	}

	return []string{p.BusinessName, p.Description, p.BusinessCategory}
}

// DisplayName returns the business name or a placeholder when it has not been set.
func (p *VendorProfile) DisplayName() string {
	if p == nil || strings.TrimSpace(p.BusinessName) == "" {
		return DefaultBusinessName
	}

	return p.BusinessName
}

// DefaultBusinessName is shown before a vendor names their business.
const DefaultBusinessName = "Your Business"
