package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"spinnergy/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

type AccountRepository interface {
	Create(account *model.Account) error
	Save(account *model.Account) error
	FindByID(id string) (*model.Account, error)
	FindByEmail(email string) (*model.Account, error)
	TopByScore(limit int) ([]model.LeaderboardEntry, error)
}

type MongoAccountRepository struct {
	collection *mongo.Collection
}

func NewMongoAccountRepository(db *mongo.Database) *MongoAccountRepository {
	collection := db.Collection("accounts")

	// Unique email constraint is enforced by the store itself.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoAccountRepository{
		collection: collection,
	}
}

func (r *MongoAccountRepository) Create(account *model.Account) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *MongoAccountRepository) Save(account *model.Account) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": account.ID}, account, opts)
	return err
}

func (r *MongoAccountRepository) FindByID(id string) (*model.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var account model.Account
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &account, err
}

func (r *MongoAccountRepository) FindByEmail(email string) (*model.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var account model.Account
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &account, err
}

func (r *MongoAccountRepository) TopByScore(limit int) ([]model.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []*model.Account
	if err = cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(accounts))
	for _, account := range accounts {
		entries = append(entries, model.LeaderboardEntry{
			Name:  account.Name,
			Score: account.Score,
		})
	}
	return entries, nil
}
