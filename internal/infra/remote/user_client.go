package remote

import (
	"context"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
)

// UserClient implements repository.UserDirectory against /users.
type UserClient struct {
	client *Client
}

// NewUserClient creates the remote user directory.
func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

var _ repository.UserDirectory = (*UserClient)(nil)

// List returns every account on the platform.
func (c *UserClient) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.client.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// FindByID retrieves a single account.
func (c *UserClient) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	if err := c.client.get(ctx, idPath("/users/%d", id), nil, &user); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

type updateStatusRequest struct {
	Status entity.UserStatus `json:"status"`
}

// UpdateStatus changes the administrative standing of an account.
func (c *UserClient) UpdateStatus(ctx context.Context, id int64, status entity.UserStatus) (*entity.User, error) {
	var user entity.User
	if err := c.client.put(ctx, idPath("/users/%d/status", id), updateStatusRequest{Status: status}, &user); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

// Delete removes an account.
func (c *UserClient) Delete(ctx context.Context, id int64) error {
	if err := c.client.delete(ctx, idPath("/users/%d", id)); err != nil {
		if IsNotFound(err) {
			return repository.ErrUserNotFound
		}

		return err
	}

	return nil
}
