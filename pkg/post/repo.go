package post

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound reports that no post matched the lookup.
var ErrNotFound = errors.New("post not found")

type Repo struct {
	posts IMongoCollection

	// kept for index management only, nil in tests
	raw *mongo.Collection
}

func NewPostRepo(postsCol *mongo.Collection) *Repo {
	posts := &MongoCollection{
		Coll: postsCol,
	}
	return &Repo{
		posts: posts,
		raw:   postsCol,
	}
}

// EnsureIndexes creates the unique sourceUrl index. The service checks
// uniqueness before inserting, but the index is the actual backstop for
// the check-then-act window.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.raw.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sourceUrl", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("post/repo: failed creating sourceUrl index: %w", err)
	}
	return nil
}

func (r *Repo) Add(ctx context.Context, p *Post) error {
	_, err := r.posts.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("post/repo: failed inserting a post: %w", err)
	}
	return nil
}

// Replace overwrites the whole stored document. No version guard:
// concurrent writers are last-write-wins.
func (r *Repo) Replace(ctx context.Context, p *Post) error {
	_, err := r.posts.ReplaceOne(ctx, bson.M{"id": p.Id}, p)
	if err != nil {
		return fmt.Errorf("post/repo: failed replacing post: %w", err)
	}
	return nil
}

func (r *Repo) GetById(ctx context.Context, id PostId) (*Post, error) {
	p := new(Post)
	err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("post/repo: post %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed getting post %s: %w", id, err)
	}
	return p, nil
}

func (r *Repo) GetBySourceURL(ctx context.Context, sourceURL string) (*Post, error) {
	p := new(Post)
	err := r.posts.FindOne(ctx, bson.M{"sourceUrl": sourceURL}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("post/repo: post with source %s: %w", sourceURL, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed getting post by source: %w", err)
	}
	return p, nil
}

func (r *Repo) ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error) {
	err := r.posts.FindOne(ctx, bson.M{"sourceUrl": sourceURL}).Decode(new(Post))
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("post/repo: failed checking source existence: %w", err)
	}
	return true, nil
}

// GetAll returns every post, most recently created first. The sort is
// server-side.
func (r *Repo) GetAll(ctx context.Context) ([]*Post, error) {
	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.posts.Find(ctx, bson.M{}, sort)
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed finding posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("post/repo: failed getting posts from cursor: %w", err)
	}
	return posts, nil
}
