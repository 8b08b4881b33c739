package service

import (
	"errors"
	"sync"
	"testing"

	"spinnergy/internal/core/model"
	"spinnergy/internal/core/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSegments = []int{10, 20, 30, 40, 50, 100}

func newGameAccount(t *testing.T, repo repository.AccountRepository, spins int) *model.Account {
	t.Helper()
	account := model.NewAccount("Ann", "a@x.com", "hash", spins)
	require.NoError(t, repo.Create(account))
	return account
}

func TestSpinConsumesQuotaAndAccruesScore(t *testing.T) {
	repo := repository.NewInMemoryAccountRepository()
	game := NewGameService(repo, testSegments)
	account := newGameAccount(t, repo, 5)

	total := 0
	for i := 0; i < 5; i++ {
		result, err := game.Spin(account.ID)
		require.NoError(t, err)
		assert.Contains(t, testSegments, result.Value)
		assert.Contains(t, result.Message, "won")
		total += result.Value
		assert.Equal(t, total, result.NewScore)
	}

	stored, err := repo.FindByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.SpinsLeft)
	assert.Len(t, stored.History, 5)

	sum := 0
	for _, record := range stored.History {
		sum += record.Points
	}
	assert.Equal(t, stored.Score, sum)
	assert.Equal(t, total, stored.Score)

	_, err = game.Spin(account.ID)
	assert.ErrorIs(t, err, ErrNoSpinsLeft)
}

func TestSpinUnknownAccount(t *testing.T) {
	game := NewGameService(repository.NewInMemoryAccountRepository(), testSegments)

	_, err := game.Spin("nope")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLandingRotation(t *testing.T) {
	// Six segments: 60 degrees each, five full turns, settle on the centre.
	for index, want := range []float64{1830, 1890, 1950, 2010, 2070, 2130} {
		assert.Equal(t, want, landingRotation(index, 6))
	}
}

func TestSpinRotationMatchesWinningSegment(t *testing.T) {
	repo := repository.NewInMemoryAccountRepository()
	game := NewGameService(repo, testSegments)
	account := newGameAccount(t, repo, 5)

	result, err := game.Spin(account.ID)
	require.NoError(t, err)

	index := -1
	for i, value := range testSegments {
		if value == result.Value {
			index = i
		}
	}
	require.NotEqual(t, -1, index)
	assert.Equal(t, landingRotation(index, len(testSegments)), result.LandingRotation)
}

type failingSaveRepository struct {
	repository.AccountRepository
}

func (r *failingSaveRepository) Save(account *model.Account) error {
	return errors.New("store unreachable")
}

func TestSpinPersistenceFailureCommitsNothing(t *testing.T) {
	repo := repository.NewInMemoryAccountRepository()
	game := NewGameService(&failingSaveRepository{repo}, testSegments)
	account := newGameAccount(t, repo, 5)

	_, err := game.Spin(account.ID)
	assert.ErrorIs(t, err, ErrSpinFailed)

	stored, err := repo.FindByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.SpinsLeft)
	assert.Equal(t, 0, stored.Score)
	assert.Empty(t, stored.History)
}

func TestConcurrentSpinsDoNotLoseUpdates(t *testing.T) {
	repo := repository.NewInMemoryAccountRepository()
	game := NewGameService(repo, testSegments)
	account := newGameAccount(t, repo, 5)

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := game.Spin(account.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, exhausted := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrNoSpinsLeft):
			exhausted++
		default:
			t.Fatalf("unexpected spin error: %v", err)
		}
	}
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 3, exhausted)

	stored, err := repo.FindByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.SpinsLeft)
	assert.Len(t, stored.History, 5)

	sum := 0
	for _, record := range stored.History {
		sum += record.Points
	}
	assert.Equal(t, stored.Score, sum)
}

func TestHistoryForFreshAccount(t *testing.T) {
	repo := repository.NewInMemoryAccountRepository()
	game := NewGameService(repo, testSegments)
	account := newGameAccount(t, repo, 5)

	history, err := game.History(account.ID)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
