package sessions

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("session not found")

type Repo struct {
	sessions *mongo.Collection
}

func NewSessionRepo(sessionsCol *mongo.Collection) *Repo {
	return &Repo{
		sessions: sessionsCol,
	}
}

func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.sessions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tokenHash", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("sessions/repo: failed creating tokenHash index: %w", err)
	}
	return nil
}

func (r *Repo) Add(ctx context.Context, s *Session) error {
	_, err := r.sessions.InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("sessions/repo: failed inserting a session: %w", err)
	}
	return nil
}

func (r *Repo) GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	s := new(Session)
	err := r.sessions.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("sessions/repo: session: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sessions/repo: failed getting session: %w", err)
	}
	return s, nil
}

func (r *Repo) GetByUserId(ctx context.Context, userId string) ([]*Session, error) {
	cursor, err := r.sessions.Find(ctx, bson.M{"userId": userId})
	if err != nil {
		return nil, fmt.Errorf("sessions/repo: failed finding user sessions: %w", err)
	}
	defer cursor.Close(ctx)

	userSessions := []*Session{}
	if err := cursor.All(ctx, &userSessions); err != nil {
		return nil, fmt.Errorf("sessions/repo: failed getting sessions from cursor: %w", err)
	}
	return userSessions, nil
}

func (r *Repo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := r.sessions.DeleteOne(ctx, bson.M{"tokenHash": tokenHash})
	if err != nil {
		return fmt.Errorf("sessions/repo: failed deleting session: %w", err)
	}
	return nil
}

func (r *Repo) DeleteByUserId(ctx context.Context, userId string) error {
	_, err := r.sessions.DeleteMany(ctx, bson.M{"userId": userId})
	if err != nil {
		return fmt.Errorf("sessions/repo: failed deleting user sessions: %w", err)
	}
	return nil
}
