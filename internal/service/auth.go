package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/infogen87/myportfolio/internal/repository"
	"github.com/infogen87/myportfolio/internal/token"
)

type AuthService struct {
	users  *repository.UserRepo
	tokens *token.Service
}

func NewAuthService(users *repository.UserRepo, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Authenticate compares the plaintext password against the stored bcrypt
// hash. A missing user and a wrong password both collapse to
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(username, password string) (*repository.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues a bearer token carrying the user id.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.Authenticate(username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID, time.Now())
}

func (s *AuthService) Register(username, password string) (*repository.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &repository.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		// Unique violations surface differently per driver; treat any
		// create failure for an existing username as a taken name.
		if _, lookupErr := s.users.FindByUsername(username); lookupErr == nil {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetUser(id string) (*repository.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser applies only the supplied fields; a password change is
// re-hashed before it is stored.
func (s *AuthService) UpdateUser(id string, username, password *string) (*repository.User, error) {
	fields := map[string]interface{}{}
	if username != nil {
		fields["username"] = *username
	}
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = string(hash)
	}
	user, err := s.users.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user row only. Owned projects and skills are
// left in place, and previously issued tokens stay valid until expiry.
func (s *AuthService) DeleteUser(id string) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ResolveToken turns a raw bearer token into the stored user record.
// An invalid or expired token returns token.ErrInvalidToken; a valid
// token whose subject no longer exists returns ErrNotFound.
func (s *AuthService) ResolveToken(raw string, now time.Time) (*repository.User, error) {
	subjectID, err := s.tokens.Verify(raw, now)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
