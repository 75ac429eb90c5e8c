package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("user not found")

type Repo struct {
	users *mongo.Collection
}

func NewUserRepo(usersCol *mongo.Collection) *Repo {
	return &Repo{
		users: usersCol,
	}
}

// EnsureIndexes creates the unique email index backing the
// check-then-insert uniqueness enforcement.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("user/repo: failed creating email index: %w", err)
	}
	return nil
}

func (r *Repo) Add(ctx context.Context, u *User) error {
	_, err := r.users.InsertOne(ctx, u)
	if err != nil {
		return fmt.Errorf("user/repo: failed inserting a user: %w", err)
	}
	return nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u := new(User)
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user/repo: user with email %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("user/repo: failed getting user by email: %w", err)
	}
	return u, nil
}

func (r *Repo) GetById(ctx context.Context, id string) (*User, error) {
	u := new(User)
	err := r.users.FindOne(ctx, bson.M{"id": id}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user/repo: user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("user/repo: failed getting user %s: %w", id, err)
	}
	return u, nil
}
