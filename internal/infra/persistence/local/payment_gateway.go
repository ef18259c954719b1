package local

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"starfund/config"
	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
)

const (
	vnpVersion     = "2.1.0"
	vnpCommand     = "pay"
	vnpCurrency    = "VND"
	vnpLocale      = "vn"
	vnpOrderType   = "other"
	vnpSuccessCode = "00"
)

// VNPayGateway builds signed VNPay sandbox payment URLs and verifies the
// redirect callback. A verified callback settles the matching investment.
type VNPayGateway struct {
	cfg         *config.VNPayConfig
	investments *InvestmentStore
	now         func() time.Time
}

// NewVNPayGateway creates the gateway from configuration.
func NewVNPayGateway(cfg *config.Config, investments *InvestmentStore) (*VNPayGateway, error) {
	if cfg.VNPay == nil || cfg.VNPay.HashSecret == "" {
		return nil, errors.New("vnpay config missing hash secret")
	}

	return &VNPayGateway{
		cfg:         cfg.VNPay,
		investments: investments,
		now:         time.Now,
	}, nil
}

var _ repository.PaymentGateway = (*VNPayGateway)(nil)

// CreatePaymentURL returns the sandbox URL the user is redirected to. VNPay
// wants the amount multiplied by 100 and the parameters signed in key order.
func (g *VNPayGateway) CreatePaymentURL(_ context.Context, req repository.PaymentRequest) (string, error) {
	if req.Amount <= 0 {
		return "", errors.New("payment amount must be positive")
	}

	txnRef := strconv.FormatInt(req.InvestmentID, 10)
	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = g.cfg.ReturnURL
	}

	params := url.Values{}
	params.Set("vnp_Version", vnpVersion)
	params.Set("vnp_Command", vnpCommand)
	params.Set("vnp_TmnCode", g.cfg.TmnCode)
	params.Set("vnp_Amount", strconv.FormatInt(int64(req.Amount*100), 10))
	params.Set("vnp_CurrCode", vnpCurrency)
	params.Set("vnp_TxnRef", txnRef)
	params.Set("vnp_OrderInfo", "Thanh toan dau tu "+txnRef)
	params.Set("vnp_OrderType", vnpOrderType)
	params.Set("vnp_Locale", vnpLocale)
	params.Set("vnp_ReturnUrl", returnURL)
	params.Set("vnp_IpAddr", "127.0.0.1")
	params.Set("vnp_CreateDate", g.now().Format("20060102150405"))

	signed := signQuery(params, g.cfg.HashSecret)

	return g.cfg.PayURL + "?" + signed, nil
}

// VerifyCallback recomputes the secure hash over the redirect query and, on
// a verified success, settles the investment the transaction referenced.
func (g *VNPayGateway) VerifyCallback(ctx context.Context, query url.Values) (*repository.PaymentResult, error) {
	secureHash := query.Get("vnp_SecureHash")
	if secureHash == "" {
		return nil, errors.New("callback missing vnp_SecureHash")
	}

	params := url.Values{}
	for key, values := range query {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		if len(values) > 0 {
			params.Set(key, values[0])
		}
	}

	expected := hmacSHA512(g.cfg.HashSecret, hashData(params))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(secureHash))) {
		return &repository.PaymentResult{Success: false, Message: "Chữ ký không hợp lệ"}, nil
	}

	investmentID, err := strconv.ParseInt(query.Get("vnp_TxnRef"), 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse vnp_TxnRef")
	}

	if query.Get("vnp_ResponseCode") != vnpSuccessCode {
		if _, err := g.investments.Settle(ctx, investmentID, entity.InvestmentFailed); err != nil {
			return nil, err
		}

		return &repository.PaymentResult{Success: false, Message: "Giao dịch thất bại"}, nil
	}

	if _, err := g.investments.Settle(ctx, investmentID, entity.InvestmentCompleted); err != nil {
		return nil, err
	}

	return &repository.PaymentResult{
		Success:       true,
		Message:       "Giao dịch thành công",
		TransactionID: query.Get("vnp_TransactionNo"),
	}, nil
}

// hashData builds the canonical key-sorted, url-encoded string VNPay signs.
func hashData(params url.Values) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(params.Get(key)))
	}

	return sb.String()
}

// signQuery appends vnp_SecureHash to the canonical query string.
func signQuery(params url.Values, secret string) string {
	data := hashData(params)

	return data + "&vnp_SecureHash=" + hmacSHA512(secret, data)
}

func hmacSHA512(key, data string) string {
	mac := hmac.New(sha512.New, []byte(key))
	mac.Write([]byte(data))

	return hex.EncodeToString(mac.Sum(nil))
}
