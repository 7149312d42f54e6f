package receipt

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQR(t *testing.T) {
	b, err := QR("PD7KQ2M9XA")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestPDF(t *testing.T) {
	b, err := PDF(Receipt{
		Title:         "Booking receipt",
		Token:         "PD7KQ2M9XA",
		Status:        "pending",
		UsageDate:     "2025-06-01",
		CustomerName:  "Nguyen Van An",
		PaymentMethod: "cash",
		Lines: []Line{
			{Label: "Court 1", Detail: "17:00 - 18:30", Amount: 225000},
			{Label: "Water", Detail: "2 x 10.000 VND", Amount: 20000},
		},
		SlotsTotal:    225000,
		ServicesTotal: 20000,
		GrandTotal:    245000,
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}
