package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID uuid.UUID) ([]byte, error)
}

// DefaultQRGenerator encodes the public order-tracking URL as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID uuid.UUID) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/v1/orders/%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
