package services

import (
	"errors"

	"ubermelon/internal/domain"
	"ubermelon/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNoSuchEmail   = errors.New("no such email")
	ErrWrongPassword = errors.New("wrong password")
)

type AuthService struct {
	Customers *repos.CustomerRepo
	Sessions  *repos.SessionRepo
}

func NewAuthService(customers *repos.CustomerRepo, sessions *repos.SessionRepo) *AuthService {
	return &AuthService{Customers: customers, Sessions: sessions}
}

// Login authenticates and binds the customer to the session. The two
// failure modes are distinct so the login page can say which one happened.
func (s *AuthService) Login(sid, email, password string) (*domain.Customer, error) {
	c, err := s.Customers.ByEmail(email)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNoSuchEmail
	}
	if bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}
	if err := s.Sessions.BindCustomer(sid, c.Email); err != nil {
		return nil, err
	}
	return c, nil
}

// CurrentCustomer resolves the session's bound identity, nil when anonymous.
func (s *AuthService) CurrentCustomer(sid string) (*domain.Customer, error) {
	email, err := s.Sessions.CustomerEmail(sid)
	if err != nil || email == "" {
		return nil, err
	}
	return s.Customers.ByEmail(email)
}
