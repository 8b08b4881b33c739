package service

import (
	"errors"
	"time"

	"spinnergy/internal/core/model"
	"spinnergy/internal/core/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnknownAccount     = errors.New("account no longer exists")
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

type SessionService interface {
	Authenticate(email, password string) (*model.Account, error)
	Issue(account *model.Account) (string, error)
	Resolve(token string) (*model.Account, error)
}

type sessionService struct {
	accountRepo repository.AccountRepository
	secret      []byte
	tokenTTL    time.Duration
	dummyHash   []byte
}

func NewSessionService(accountRepo repository.AccountRepository, secret string, tokenTTL time.Duration) SessionService {
	// Compared against when the email is unknown, so both failure paths
	// cost one bcrypt comparison.
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("spinnergy-no-such-account"), bcrypt.DefaultCost)

	return &sessionService{
		accountRepo: accountRepo,
		secret:      []byte(secret),
		tokenTTL:    tokenTTL,
		dummyHash:   dummyHash,
	}
}

func (s *sessionService) Authenticate(email, password string) (*model.Account, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (s *sessionService) Issue(account *model.Account) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *sessionService) Resolve(tokenString string) (*model.Account, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	account, err := s.accountRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrUnknownAccount
	}
	return account, nil
}
