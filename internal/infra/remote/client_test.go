package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"starfund/config"
	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client, err := NewClient(cfg, staticToken(token), logger)
	require.NoError(t, err)

	return client
}

func TestClientRequiresBaseURL(t *testing.T) {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	_, err := NewClient(cfg, staticToken(""), logger)
	require.Error(t, err)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]entity.Project{})
	})

	client := newTestClient(t, handler, "tok-123")
	_, err := NewProjectClient(client).ListApproved(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientSurfacesServerMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	})

	client := newTestClient(t, handler, "")
	_, err := NewProjectClient(client).ListApproved(context.Background())
	require.Error(t, err)
	require.Equal(t, "boom", err.Error())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestClientFallsBackToStatusMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>nginx</html>"))
	})

	client := newTestClient(t, handler, "")
	_, err := NewProjectClient(client).ListApproved(context.Background())
	require.Error(t, err)
	require.Equal(t, "HTTP error! status: 502", err.Error())
}

func TestProjectNotFoundMapsToSentinel(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Project not found"}`))
	})

	client := newTestClient(t, handler, "")
	_, err := NewProjectClient(client).FindByID(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestLoginDecodesAuthResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "investor@test.com", req.Email)

		_ = json.NewEncoder(w).Encode(entity.User{
			ID:    3,
			Email: req.Email,
			Role:  entity.RoleInvestor,
			Token: "jwt-from-server",
		})
	})

	client := newTestClient(t, handler, "")
	user, err := NewAuthClient(client).Login(context.Background(), "investor@test.com", "123456")
	require.NoError(t, err)
	require.Equal(t, int64(3), user.ID)
	require.Equal(t, "jwt-from-server", user.Token)
}

func TestLoginUnauthorizedMapsToSentinel(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Email hoặc mật khẩu không đúng"}`))
	})

	client := newTestClient(t, handler, "")
	_, err := NewAuthClient(client).Login(context.Background(), "x@test.com", "bad")
	require.ErrorIs(t, err, repository.ErrInvalidCredentials)
}

func TestSearchEncodesQuery(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode([]entity.Project{})
	})

	client := newTestClient(t, handler, "")
	_, err := NewProjectClient(client).Search(context.Background(), "năng lượng xanh")
	require.NoError(t, err)
	require.Equal(t, "năng lượng xanh", gotQuery)
}

func TestCreatePaymentURL(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payment/vnpay/create", r.URL.Path)
		_ = json.NewEncoder(w).Encode(createPaymentResponse{PaymentURL: "https://sandbox.vnpayment.vn/pay?x=1"})
	})

	client := newTestClient(t, handler, "tok")
	payURL, err := NewPaymentClient(client).CreatePaymentURL(context.Background(), repository.PaymentRequest{
		Amount:       5000,
		InvestmentID: 9,
	})
	require.NoError(t, err)
	require.Equal(t, "https://sandbox.vnpayment.vn/pay?x=1", payURL)
}

func TestProjectUpdateSendsPartialCamelCaseBody(t *testing.T) {
	var gotBody map[string]json.RawMessage
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(entity.Project{ID: 1, Title: "Tên mới"})
	})

	client := newTestClient(t, handler, "tok-123")
	title := "Tên mới"
	_, err := NewProjectClient(client).Update(context.Background(), 1, repository.ProjectUpdate{Title: &title})
	require.NoError(t, err)

	require.Contains(t, gotBody, "title")
	require.NotContains(t, gotBody, "Title")
	for field := range gotBody {
		require.Equal(t, "title", field, "unset fields must stay off the wire")
	}
}
