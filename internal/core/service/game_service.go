package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"spinnergy/internal/cache"
	"spinnergy/internal/core/model"
	"spinnergy/internal/core/repository"
)

var (
	ErrNoSpinsLeft = errors.New("no spins left")
	ErrSpinFailed  = errors.New("could not record spin")
)

// extraRotations is the number of full turns the wheel animation makes
// before settling on the winning segment.
const extraRotations = 5

type GameService interface {
	Spin(accountID string) (*model.SpinResult, error)
	History(accountID string) ([]model.SpinRecord, error)
}

type gameService struct {
	accountRepo repository.AccountRepository
	segments    []int

	rng   *rand.Rand
	rngMu sync.Mutex

	// One mutex per account so concurrent spins by the same account
	// cannot both decrement SpinsLeft from the same starting value.
	locks   map[string]*sync.Mutex
	locksMu sync.Mutex
}

func NewGameService(accountRepo repository.AccountRepository, segments []int) GameService {
	return &gameService{
		accountRepo: accountRepo,
		segments:    segments,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		locks:       make(map[string]*sync.Mutex),
	}
}

func (s *gameService) Spin(accountID string) (*model.SpinResult, error) {
	lock := s.accountLock(accountID)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if account.SpinsLeft <= 0 {
		return nil, ErrNoSpinsLeft
	}

	index := s.pickSegment()
	reward := s.segments[index]

	account.History = append(account.History, model.SpinRecord{
		Points: reward,
		Date:   time.Now(),
	})
	account.Score += reward
	account.SpinsLeft--

	// The mutation only counts once the store accepts it.
	if err := s.accountRepo.Save(account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpinFailed, err)
	}

	cache.Delete(context.Background(), cache.LeaderboardKey)

	return &model.SpinResult{
		Value:           reward,
		NewScore:        account.Score,
		LandingRotation: landingRotation(index, len(s.segments)),
		Message:         fmt.Sprintf("Congratulations! You won %d points!", reward),
	}, nil
}

func (s *gameService) History(accountID string) ([]model.SpinRecord, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if account.History == nil {
		return []model.SpinRecord{}, nil
	}
	return account.History, nil
}

func (s *gameService) pickSegment() int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(len(s.segments))
}

// landingRotation maps a segment index to the final wheel angle: a fixed
// number of full turns plus the centre of the winning segment.
func landingRotation(index, segmentCount int) float64 {
	degreesPerSegment := 360.0 / float64(segmentCount)
	return 360.0*extraRotations + float64(index)*degreesPerSegment + degreesPerSegment/2
}

func (s *gameService) accountLock(accountID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[accountID] = lock
	}
	return lock
}
