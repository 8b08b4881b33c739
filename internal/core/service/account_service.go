package service

import (
	"errors"

	"spinnergy/internal/core/model"
	"spinnergy/internal/core/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidAccountData = errors.New("name, email and password are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
)

type AccountService interface {
	Register(name, email, password string) (*model.Account, error)
	GetAccount(id string) (*model.Account, error)
}

type accountService struct {
	accountRepo  repository.AccountRepository
	initialSpins int
}

func NewAccountService(accountRepo repository.AccountRepository, initialSpins int) AccountService {
	return &accountService{
		accountRepo:  accountRepo,
		initialSpins: initialSpins,
	}
}

func (s *accountService) Register(name, email, password string) (*model.Account, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidAccountData
	}

	existing, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := model.NewAccount(name, email, string(hash), s.initialSpins)
	if err := s.accountRepo.Create(account); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccount(id string) (*model.Account, error) {
	if id == "" {
		return nil, ErrAccountNotFound
	}

	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}
