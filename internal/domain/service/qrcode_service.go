package service

// QRCodeService defines QR code generation for payment links.
type QRCodeService interface {
	// GeneratePaymentQR renders the payment link URL as a PNG image.
	GeneratePaymentQR(paymentURL string) ([]byte, error)
}
