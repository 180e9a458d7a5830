package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_VendorShareURL(t *testing.T) {
	t.Parallel()

	service := NewQRCodeService(256, "M", "https://eventhub.example/")
	vendorID := uuid.MustParse("0190f0a4-6f2b-7c3a-9d1e-2b3c4d5e6f70")

	assert.Equal(t, "https://eventhub.example/vendors/0190f0a4-6f2b-7c3a-9d1e-2b3c4d5e6f70", service.VendorShareURL(vendorID))
}

func TestQRCodeService_GenerateVendorQR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := NewQRCodeService(tt.size, "M", "https://eventhub.example")
			qrBytes, err := service.GenerateVendorQR(uuid.New())
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_ParseVendorQR(t *testing.T) {
	t.Parallel()

	service := NewQRCodeService(256, "M", "https://eventhub.example")
	vendorID := uuid.New()

	got, err := service.ParseVendorQR(service.VendorShareURL(vendorID))
	require.NoError(t, err)
	assert.Equal(t, vendorID, got)

	_, err = service.ParseVendorQR("https://eventhub.example/planners/" + vendorID.String())
	require.Error(t, err)

	_, err = service.ParseVendorQR("https://eventhub.example/vendors/not-a-uuid")
	require.Error(t, err)
}
