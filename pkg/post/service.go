package post

import (
	"context"
	"errors"

	"agora/pkg/common"
	"agora/pkg/errs"
)

//go:generate mockgen -source=service.go -destination=repo_mock.go -package=post

// IPostRepo is the store port the aggregate service writes through.
type IPostRepo interface {
	GetAll(context.Context) ([]*Post, error)
	GetById(context.Context, PostId) (*Post, error)
	GetBySourceURL(context.Context, string) (*Post, error)
	ExistsBySourceURL(context.Context, string) (bool, error)

	Add(context.Context, *Post) error
	Replace(context.Context, *Post) error
}

type CreatePostRequest struct {
	Title     string   `json:"title" validate:"required"`
	Summary   string   `json:"summary" validate:"required"`
	SourceURL string   `json:"sourceUrl" validate:"required"`
	Tags      []string `json:"tags"`
}

type TogglePostLikeRequest struct {
	UserId string `json:"userId" validate:"required"`
}

type CreateCommentRequest struct {
	Section    string `json:"section"`
	AuthorId   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content" validate:"required"`
}

type CreateReplyRequest struct {
	AuthorId   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content" validate:"required"`
}

// Service owns the post aggregate's business rules. Every mutation
// reads the whole document, rebuilds a new value with exactly the
// changed sub-structure and a fresh updatedAt, and persists it as one
// replacement.
type Service struct {
	repo IPostRepo
}

func NewService(repo IPostRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*PostView, error) {
	docs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*PostView, 0, len(docs))
	for _, doc := range docs {
		views = append(views, MapPost(doc))
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, id PostId) (*PostView, error) {
	doc, err := s.findPostDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return MapPost(doc), nil
}

func (s *Service) Create(ctx context.Context, req *CreatePostRequest) (*PostView, error) {
	if req == nil {
		return nil, errs.InvalidArgument("Missing post payload")
	}

	doc := NewPostDocument(req)

	if doc.Title == "" {
		return nil, errs.InvalidArgument("Post title is required")
	}
	if doc.Summary == "" {
		return nil, errs.InvalidArgument("Post summary is required")
	}
	if doc.SourceURL == "" {
		return nil, errs.InvalidArgument("Source URL is required")
	}

	exists, err := s.repo.ExistsBySourceURL(ctx, doc.SourceURL)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.Conflict("Post with this source URL already exists")
	}

	now := common.Now()
	doc.Id = PostId(common.NewID())
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := s.repo.Add(ctx, doc); err != nil {
		return nil, err
	}
	return MapPost(doc), nil
}

func (s *Service) FindBySourceURL(ctx context.Context, sourceURL string) (*PostView, error) {
	lookupURL := common.NormalizeText(sourceURL)
	if lookupURL == "" {
		return nil, errs.InvalidArgument("Source URL is required")
	}

	doc, err := s.repo.GetBySourceURL(ctx, lookupURL)
	if errors.Is(err, ErrNotFound) {
		return nil, errs.NotFound("Post not found")
	}
	if err != nil {
		return nil, err
	}
	return MapPost(doc), nil
}

func (s *Service) ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error) {
	lookupURL := common.NormalizeText(sourceURL)
	if lookupURL == "" {
		return false, errs.InvalidArgument("Source URL is required")
	}
	return s.repo.ExistsBySourceURL(ctx, lookupURL)
}

// ToggleLike flips exactly one membership in the like set: present
// removes, absent adds. Calling it twice for the same user restores the
// prior set. Blank entries left by older revisions are dropped while
// rebuilding.
func (s *Service) ToggleLike(ctx context.Context, id PostId, userId string) (*PostView, error) {
	if common.IsBlank(userId) {
		return nil, errs.InvalidArgument("User id is required")
	}
	normalizedUserId := common.NormalizeText(userId)

	doc, err := s.findPostDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	likedBy := make([]string, 0, len(doc.LikedBy)+1)
	alreadyLiked := false
	for _, rawUserId := range doc.LikedBy {
		liker := common.NormalizeText(rawUserId)
		if liker == "" {
			continue
		}
		if liker == normalizedUserId {
			alreadyLiked = true
			continue
		}
		likedBy = append(likedBy, liker)
	}
	if !alreadyLiked {
		likedBy = append(likedBy, normalizedUserId)
	}

	updated := rebuildDocument(doc, likedBy, doc.Comments)
	if err := s.repo.Replace(ctx, updated); err != nil {
		return nil, err
	}
	return MapPost(updated), nil
}

func (s *Service) AddComment(ctx context.Context, id PostId, req *CreateCommentRequest) (*PostView, error) {
	if req == nil {
		return nil, errs.InvalidArgument("Missing comment payload")
	}

	doc, err := s.findPostDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	content := common.NormalizeText(req.Content)
	if content == "" {
		return nil, errs.InvalidArgument("Comment content is required")
	}

	cmt := Comment{
		Id:         common.NewID(),
		Section:    ParseSection(req.Section),
		AuthorId:   req.AuthorId,
		AuthorName: req.AuthorName,
		Content:    content,
		CreatedAt:  common.Now(),
		Replies:    []Reply{},
	}

	comments := append(copyComments(doc.Comments), cmt)
	updated := rebuildDocument(doc, doc.LikedBy, comments)
	if err := s.repo.Replace(ctx, updated); err != nil {
		return nil, err
	}
	return MapPost(updated), nil
}

func (s *Service) AddReply(ctx context.Context, id PostId, commentId string, req *CreateReplyRequest) (*PostView, error) {
	if req == nil {
		return nil, errs.InvalidArgument("Missing reply payload")
	}

	doc, err := s.findPostDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	// first match wins, comment ids are unique within a post
	parentIdx := -1
	for idx, c := range doc.Comments {
		if c.Id == commentId {
			parentIdx = idx
			break
		}
	}
	if parentIdx < 0 {
		return nil, errs.NotFound("Comment not found")
	}

	content := common.NormalizeText(req.Content)
	if content == "" {
		return nil, errs.InvalidArgument("Reply content is required")
	}

	reply := Reply{
		Id:         common.NewID(),
		ParentId:   commentId,
		AuthorId:   req.AuthorId,
		AuthorName: req.AuthorName,
		Content:    content,
		CreatedAt:  common.Now(),
	}

	comments := copyComments(doc.Comments)
	parent := comments[parentIdx]
	parent.Replies = append(copyReplies(parent.Replies), reply)
	comments[parentIdx] = parent

	updated := rebuildDocument(doc, doc.LikedBy, comments)
	if err := s.repo.Replace(ctx, updated); err != nil {
		return nil, err
	}
	return MapPost(updated), nil
}

func (s *Service) findPostDocument(ctx context.Context, id PostId) (*Post, error) {
	doc, err := s.repo.GetById(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, errs.NotFound("Post not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// rebuildDocument is the copy-on-write step shared by every mutation:
// identity, immutable fields and createdAt carry over untouched, the
// changed sub-structures come in as arguments, updatedAt is stamped.
func rebuildDocument(original *Post, likedBy []string, comments []Comment) *Post {
	return &Post{
		Id:        original.Id,
		Title:     original.Title,
		Summary:   original.Summary,
		SourceURL: original.SourceURL,
		Tags:      original.Tags,
		CreatedAt: original.CreatedAt,
		UpdatedAt: common.Now(),
		LikedBy:   likedBy,
		Comments:  comments,
	}
}

func copyComments(comments []Comment) []Comment {
	copied := make([]Comment, 0, len(comments)+1)
	return append(copied, comments...)
}

func copyReplies(replies []Reply) []Reply {
	copied := make([]Reply, 0, len(replies)+1)
	return append(copied, replies...)
}
