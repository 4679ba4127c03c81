package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/matcha-inventory/internal/models"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

const usersCollection = "users"

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
)

// Service owns user registration, login and token resolution.
type Service struct {
	users  *store.Store[models.User]
	tokens *TokenManager
	cost   int
}

func NewService(b store.Backend, tokens *TokenManager) *Service {
	return &Service{
		users:  store.Open[models.User](b, usersCollection),
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *Service) Register(ctx context.Context, username, password, email string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	_, err := s.users.FindOne(ctx, store.Filter{"username": username})
	switch {
	case err == nil:
		return models.User{}, ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        strings.TrimSpace(email),
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return user, nil
}

// Login checks the password and returns a fresh token.
func (s *Service) Login(ctx context.Context, username, password string) (string, models.User, error) {
	user, err := s.find(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidPassword
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		return "", models.User{}, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Resolve verifies a token and loads the user it names.
func (s *Service) Resolve(ctx context.Context, token string) (models.User, error) {
	username, err := s.tokens.Parse(token)
	if err != nil {
		return models.User{}, err
	}
	return s.find(ctx, username)
}

func (s *Service) find(ctx context.Context, username string) (models.User, error) {
	user, err := s.users.FindOne(ctx, store.Filter{"username": username})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
