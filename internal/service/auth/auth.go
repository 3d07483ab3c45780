package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartclub/api/internal/model"
	"smartclub/api/internal/repository"
)

var (
	ErrMissingFields      = errors.New("missing fields: name, email, password")
	ErrMissingCredentials = errors.New("missing email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
)

type Config struct {
	Secret   string
	TokenTTL time.Duration
}

type Service struct {
	repo   *repository.StoreRepository
	config Config
}

func NewService(repo *repository.StoreRepository, cfg Config) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = time.Hour
	}
	return &Service{repo: repo, config: cfg}
}

// SignupResult returns safe fields only; the hash never leaves the service.
type SignupResult struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	MembershipStatus string `json:"membership_status"`
}

// Signup registers a new user with an active membership valid for one year.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*SignupResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, name, email, hash, "active", time.Now().AddDate(1, 0, 0))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &SignupResult{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Login verifies the password against the stored hash and mints a token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, ErrInvalidPassword
	}

	token, err := s.mintToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User: LoginUser{
			ID:               user.ID,
			Name:             user.Name,
			MembershipStatus: user.MembershipStatus,
		},
	}, nil
}

func (s *Service) mintToken(user *model.User) (string, error) {
	return signToken(s.config.Secret, s.config.TokenTTL, user.ID, user.MembershipStatus)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword compares the plaintext directly against the stored hash.
func checkPassword(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
