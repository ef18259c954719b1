package local

import (
	"context"
	"strings"
	"sync"
	"time"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/domain/service"
	"starfund/internal/errors"
	"starfund/internal/infra/localstore"
)

// storedUser is the on-disk account record. The password never leaves this
// package, and only as a bcrypt hash.
type storedUser struct {
	User         entity.User `json:"user"`
	PasswordHash string      `json:"passwordHash"`
}

type usersDocument struct {
	NextID int64        `json:"nextId"`
	Users  []storedUser `json:"users"`
}

// UserStore implements repository.Authenticator and repository.UserDirectory
// over localstore. Mock mode mints real signed tokens so the bearer flow is
// identical to the remote path.
type UserStore struct {
	mu      sync.Mutex
	store   *localstore.Store
	hasher  service.PasswordHasher
	tokens  service.TokenService
	latency time.Duration
	now     func() time.Time
}

// NewUserStore creates the local account store.
func NewUserStore(store *localstore.Store, hasher service.PasswordHasher, tokens service.TokenService, latency time.Duration) *UserStore {
	return &UserStore{
		store:   store,
		hasher:  hasher,
		tokens:  tokens,
		latency: latency,
		now:     time.Now,
	}
}

var (
	_ repository.Authenticator = (*UserStore)(nil)
	_ repository.UserDirectory = (*UserStore)(nil)
)

// load reads the accounts document, seeding the demo identities on first
// use. Callers must hold mu.
func (s *UserStore) load() (*usersDocument, error) {
	doc := &usersDocument{}
	found, err := s.store.Load(usersDoc, doc)
	if err != nil {
		return nil, err
	}
	if !found {
		seed := seedUsers()
		doc = &usersDocument{
			NextID: maxID(seed, func(u seedUser) int64 { return u.user.ID }) + 1,
		}
		for _, su := range seed {
			hash, err := s.hasher.Hash(su.password)
			if err != nil {
				return nil, errors.Wrap(err, "hash seed password")
			}
			doc.Users = append(doc.Users, storedUser{User: su.user, PasswordHash: hash})
		}
		if err := s.store.Save(usersDoc, doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Login exchanges credentials for an identity carrying a bearer token.
func (s *UserStore) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, su := range doc.Users {
		if !strings.EqualFold(su.User.Email, email) {
			continue
		}
		if !s.hasher.Check(password, su.PasswordHash) {
			return nil, repository.ErrInvalidCredentials
		}
		if su.User.Status == entity.UserBanned || su.User.Status == entity.UserInactive {
			return nil, repository.ErrInvalidCredentials
		}

		return s.withToken(su.User)
	}

	return nil, repository.ErrInvalidCredentials
}

// Register creates a new account and returns the authenticated identity.
func (s *UserStore) Register(ctx context.Context, reg repository.Registration) (*entity.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, su := range doc.Users {
		if strings.EqualFold(su.User.Email, reg.Email) {
			return nil, repository.ErrEmailTaken
		}
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := entity.User{
		ID:        doc.NextID,
		Email:     reg.Email,
		Name:      reg.Name,
		Role:      reg.Role,
		Company:   reg.Company,
		Phone:     reg.Phone,
		Status:    entity.UserActive,
		CreatedAt: s.now().UTC(),
	}
	doc.NextID++
	doc.Users = append(doc.Users, storedUser{User: user, PasswordHash: hash})
	if err := s.store.Save(usersDoc, doc); err != nil {
		return nil, err
	}

	return s.withToken(user)
}

// CurrentUser resolves a bearer token back to its identity.
func (s *UserStore) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(repository.ErrInvalidCredentials, err.Error())
	}

	user, err := s.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	user.Token = token

	return user, nil
}

func (s *UserStore) withToken(user entity.User) (*entity.User, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "mint token")
	}
	user.Token = token

	return &user, nil
}

// List returns every account on the platform.
func (s *UserStore) List(ctx context.Context) ([]entity.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(doc.Users))
	for _, su := range doc.Users {
		users = append(users, su.User)
	}

	return users, nil
}

// FindByID retrieves a single account by its id.
func (s *UserStore) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, su := range doc.Users {
		if su.User.ID == id {
			user := su.User

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// UpdateStatus changes the administrative standing of an account.
func (s *UserStore) UpdateStatus(ctx context.Context, id int64, status entity.UserStatus) (*entity.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].User.ID != id {
			continue
		}

		doc.Users[i].User.Status = status
		if err := s.store.Save(usersDoc, doc); err != nil {
			return nil, err
		}
		user := doc.Users[i].User

		return &user, nil
	}

	return nil, repository.ErrUserNotFound
}

// Delete removes an account.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Users {
		if doc.Users[i].User.ID == id {
			doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)

			return s.store.Save(usersDoc, doc)
		}
	}

	return repository.ErrUserNotFound
}
