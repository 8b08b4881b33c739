package model

import (
	"strings"
	"time"

	"spinnergy/internal/core/util"
)

// Account is a registered player and their game state.
type Account struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Never exposed over the API
	Score        int          `json:"score"`
	SpinsLeft    int          `json:"spinsLeft"`
	History      []SpinRecord `json:"history"`
	IsAdmin      bool         `json:"isAdmin"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// SpinRecord is one entry in an account's spin history.
type SpinRecord struct {
	Points int       `json:"points"`
	Date   time.Time `json:"date"`
}

func NewAccount(name, email, passwordHash string, initialSpins int) *Account {
	return &Account{
		ID:           util.GenerateID(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Score:        0,
		SpinsLeft:    initialSpins,
		History:      []SpinRecord{},
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}
}
