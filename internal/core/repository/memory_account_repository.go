package repository

import (
	"sort"
	"strings"
	"sync"

	"spinnergy/internal/core/model"
)

// inMemoryAccountRepository is the fallback store used when MongoDB is
// unavailable. Accounts are kept in insertion order; data does not survive
// a restart.
type inMemoryAccountRepository struct {
	accounts []*model.Account
	mutex    sync.RWMutex
}

func NewInMemoryAccountRepository(seed ...*model.Account) AccountRepository {
	r := &inMemoryAccountRepository{
		accounts: make([]*model.Account, 0),
	}
	for _, account := range seed {
		r.accounts = append(r.accounts, cloneAccount(account))
	}
	return r
}

func (r *inMemoryAccountRepository) Create(account *model.Account) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	email := strings.ToLower(account.Email)
	for _, existing := range r.accounts {
		if strings.ToLower(existing.Email) == email {
			return ErrEmailTaken
		}
	}

	r.accounts = append(r.accounts, cloneAccount(account))
	return nil
}

func (r *inMemoryAccountRepository) Save(account *model.Account) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, existing := range r.accounts {
		if existing.ID == account.ID {
			r.accounts[i] = cloneAccount(account)
			return nil
		}
	}

	r.accounts = append(r.accounts, cloneAccount(account))
	return nil
}

func (r *inMemoryAccountRepository) FindByID(id string) (*model.Account, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, account := range r.accounts {
		if account.ID == id {
			return cloneAccount(account), nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepository) FindByEmail(email string) (*model.Account, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	email = strings.ToLower(email)
	for _, account := range r.accounts {
		if strings.ToLower(account.Email) == email {
			return cloneAccount(account), nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepository) TopByScore(limit int) ([]model.LeaderboardEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entries := make([]model.LeaderboardEntry, 0, len(r.accounts))
	for _, account := range r.accounts {
		entries = append(entries, model.LeaderboardEntry{
			Name:  account.Name,
			Score: account.Score,
		})
	}

	// Stable sort keeps insertion order between equal scores.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func cloneAccount(account *model.Account) *model.Account {
	copied := *account
	copied.History = make([]model.SpinRecord, len(account.History))
	copy(copied.History, account.History)
	return &copied
}
