package remote

import (
	"context"
	"fmt"
	"net/http"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
)

// AuthClient implements repository.Authenticator against /auth.
type AuthClient struct {
	client *Client
}

// NewAuthClient creates the remote authenticator.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

var _ repository.Authenticator = (*AuthClient)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     entity.Role `json:"role"`
	Company  string      `json:"company,omitempty"`
	Phone    string      `json:"phone,omitempty"`
}

// Login exchanges credentials for an authenticated identity.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*entity.User, error) {
	var user entity.User
	err := c.client.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &user)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, repository.ErrInvalidCredentials
		}

		return nil, err
	}

	return &user, nil
}

// Register creates a new account.
func (c *AuthClient) Register(ctx context.Context, reg repository.Registration) (*entity.User, error) {
	var user entity.User
	err := c.client.post(ctx, "/auth/register", registerRequest{
		Email:    reg.Email,
		Password: reg.Password,
		Name:     reg.Name,
		Role:     reg.Role,
		Company:  reg.Company,
		Phone:    reg.Phone,
	}, &user)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return nil, repository.ErrEmailTaken
		}

		return nil, err
	}

	return &user, nil
}

// CurrentUser resolves the bearer token the client already carries. The
// token argument is unused; the HTTP layer sends the session's token.
func (c *AuthClient) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	var user entity.User
	if err := c.client.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	if user.Token == "" {
		user.Token = token
	}

	return &user, nil
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
