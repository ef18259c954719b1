package qrcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaymentPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.PaymentPNG("https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=1")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes.
	require.Equal(t, byte(0x89), png[0])
}

func TestPaymentText(t *testing.T) {
	svc := NewQRCodeService(0, "X")

	text, err := svc.PaymentText("https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=1")
	require.NoError(t, err)
	require.NotEmpty(t, text)
}
