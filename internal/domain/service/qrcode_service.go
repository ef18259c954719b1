package service

// QRCodeService renders payment URLs as QR codes so they can be scanned by
// the VNPay mobile app.
type QRCodeService interface {
	// PaymentPNG renders the URL as a PNG image.
	PaymentPNG(url string) ([]byte, error)
	// PaymentText renders the URL as a terminal-printable QR block.
	PaymentText(url string) (string, error)
}
