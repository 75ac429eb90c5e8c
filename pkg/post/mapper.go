package post

import (
	"time"

	"agora/pkg/common"
)

// Wire shapes. The stored document never crosses the HTTP boundary
// directly; collections are materialized so the client never sees null
// where a list belongs.

type PostView struct {
	Id        string        `json:"id"`
	Title     string        `json:"title"`
	Summary   string        `json:"summary"`
	SourceURL string        `json:"sourceUrl"`
	Tags      []string      `json:"tags"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	LikedBy   []string      `json:"likedBy"`
	Comments  []CommentView `json:"comments"`
}

type CommentView struct {
	Id         string      `json:"id"`
	Section    string      `json:"section"`
	AuthorId   string      `json:"authorId"`
	AuthorName string      `json:"authorName"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"createdAt"`
	Replies    []ReplyView `json:"replies"`
}

type ReplyView struct {
	Id         string    `json:"id"`
	ParentId   string    `json:"parentId"`
	AuthorId   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func MapPost(doc *Post) *PostView {
	if doc == nil {
		return nil
	}

	return &PostView{
		Id:        string(doc.Id),
		Title:     doc.Title,
		Summary:   doc.Summary,
		SourceURL: doc.SourceURL,
		Tags:      copyStrings(doc.Tags),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		LikedBy:   copyStrings(doc.LikedBy),
		Comments:  mapComments(doc.Comments),
	}
}

func mapComments(docs []Comment) []CommentView {
	views := make([]CommentView, 0, len(docs))
	for _, c := range docs {
		views = append(views, CommentView{
			Id:         c.Id,
			Section:    string(c.Section),
			AuthorId:   c.AuthorId,
			AuthorName: c.AuthorName,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
			Replies:    mapReplies(c.Replies),
		})
	}
	return views
}

func mapReplies(docs []Reply) []ReplyView {
	views := make([]ReplyView, 0, len(docs))
	for _, rp := range docs {
		views = append(views, ReplyView{
			Id:         rp.Id,
			ParentId:   rp.ParentId,
			AuthorId:   rp.AuthorId,
			AuthorName: rp.AuthorName,
			Content:    rp.Content,
			CreatedAt:  rp.CreatedAt,
		})
	}
	return views
}

// NewPostDocument is a structural transform of a creation request:
// free-text fields are trimmed and collections initialized empty. It
// assigns no id and no timestamps, and it does not validate — both are
// the service's job.
func NewPostDocument(req *CreatePostRequest) *Post {
	if req == nil {
		return nil
	}

	return &Post{
		Title:     common.NormalizeText(req.Title),
		Summary:   common.NormalizeText(req.Summary),
		SourceURL: common.NormalizeText(req.SourceURL),
		Tags:      copyStrings(req.Tags),
		LikedBy:   []string{},
		Comments:  []Comment{},
	}
}

func copyStrings(values []string) []string {
	copied := make([]string, 0, len(values))
	return append(copied, values...)
}
