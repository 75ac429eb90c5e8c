package post

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/pkg/errs"
)

func apiErrStatus(t *testing.T, err error) int {
	t.Helper()
	apiErr := new(errs.Error)
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Status
}

func storedPost() *Post {
	created := time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
	return &Post{
		Id:        PostId("p1"),
		Title:     "A",
		Summary:   "B",
		SourceURL: "http://x/1",
		Tags:      []string{"tech"},
		CreatedAt: created,
		UpdatedAt: created,
		LikedBy:   []string{},
		Comments:  []Comment{},
	}
}

func TestCreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockIPostRepo(ctrl)
	svc := NewService(mockRepo)

	t.Run("success", func(t *testing.T) {
		var added *Post
		mockRepo.EXPECT().ExistsBySourceURL(ctx, "http://x/1").Return(false, nil)
		mockRepo.EXPECT().Add(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *Post) error {
				added = p
				return nil
			})

		view, err := svc.Create(ctx, &CreatePostRequest{
			Title:     "  A  ",
			Summary:   "B",
			SourceURL: " http://x/1 ",
			Tags:      []string{"tech", "science"},
		})
		require.NoError(t, err)
		require.NotNil(t, added)

		assert.NotEmpty(t, added.Id)
		assert.Equal(t, "A", added.Title)
		assert.Equal(t, "http://x/1", added.SourceURL)
		assert.Equal(t, added.CreatedAt, added.UpdatedAt)
		assert.Equal(t, []string{}, added.LikedBy)
		assert.Equal(t, []Comment{}, added.Comments)

		assert.Equal(t, string(added.Id), view.Id)
		assert.Equal(t, []string{"tech", "science"}, view.Tags)
		assert.Equal(t, []string{}, view.LikedBy)
		assert.Equal(t, []CommentView{}, view.Comments)
	})

	t.Run("duplicate source url", func(t *testing.T) {
		mockRepo.EXPECT().ExistsBySourceURL(ctx, "http://x/1").Return(true, nil)

		_, err := svc.Create(ctx, &CreatePostRequest{Title: "A", Summary: "B", SourceURL: "http://x/1"})
		assert.Equal(t, http.StatusConflict, apiErrStatus(t, err))
	})

	t.Run("blank fields", func(t *testing.T) {
		cases := []struct {
			name string
			req  *CreatePostRequest
			msg  string
		}{
			{"blank title", &CreatePostRequest{Title: "  ", Summary: "B", SourceURL: "http://x/1"}, "Post title is required"},
			{"blank summary", &CreatePostRequest{Title: "A", Summary: "", SourceURL: "http://x/1"}, "Post summary is required"},
			{"blank source url", &CreatePostRequest{Title: "A", Summary: "B", SourceURL: " "}, "Source URL is required"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Create(ctx, tc.req)
				assert.Equal(t, http.StatusBadRequest, apiErrStatus(t, err))
				assert.EqualError(t, err, tc.msg)
			})
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := fmt.Errorf("exists_check_failed")
		mockRepo.EXPECT().ExistsBySourceURL(ctx, "http://x/2").Return(false, storeErr)

		_, err := svc.Create(ctx, &CreatePostRequest{Title: "A", Summary: "B", SourceURL: "http://x/2"})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestGetPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockIPostRepo(ctrl)
	svc := NewService(mockRepo)

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetById(ctx, PostId("missing")).
			Return(nil, fmt.Errorf("post/repo: post missing: %w", ErrNotFound))

		_, err := svc.Get(ctx, PostId("missing"))
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
	})
}

func TestListPostsKeepsStoreOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockIPostRepo(ctrl)
	svc := NewService(mockRepo)

	// the store returns newest first; the service must not reorder
	t1 := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	docs := []*Post{
		{Id: "p3", CreatedAt: t1.Add(2 * time.Hour)},
		{Id: "p2", CreatedAt: t1.Add(time.Hour)},
		{Id: "p1", CreatedAt: t1},
	}
	mockRepo.EXPECT().GetAll(ctx).Return(docs, nil)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "p3", views[0].Id)
	assert.Equal(t, "p2", views[1].Id)
	assert.Equal(t, "p1", views[2].Id)
}

func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockIPostRepo(ctrl)
	svc := NewService(mockRepo)

	stored := storedPost()
	stored.LikedBy = []string{"u2"}

	var afterFirst, afterSecond *Post
	gomock.InOrder(
		mockRepo.EXPECT().GetById(ctx, stored.Id).Return(stored, nil),
		mockRepo.EXPECT().Replace(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *Post) error {
				afterFirst = p
				return nil
			}),
		mockRepo.EXPECT().GetById(ctx, stored.Id).
			DoAndReturn(func(context.Context, PostId) (*Post, error) {
				return afterFirst, nil
			}),
		mockRepo.EXPECT().Replace(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *Post) error {
				afterSecond = p
				return nil
			}),
	)

	first, err := svc.ToggleLike(ctx, stored.Id, " u1 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u1"}, first.LikedBy)
	assert.False(t, afterFirst.UpdatedAt.Before(stored.CreatedAt))

	second, err := svc.ToggleLike(ctx, stored.Id, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, second.LikedBy)
	assert.Equal(t, stored.CreatedAt, afterSecond.CreatedAt)
}

func TestToggleLikeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockIPostRepo(ctrl)
	svc := NewService(mockRepo)

	t.Run("blank user id", func(t *testing.T) {
		_, err := svc.ToggleLike(ctx, PostId("p1"), "  ")
		assert.Equal(t, http.StatusBadRequest, apiErrStatus(t, err))
	})

	t.Run("post missing", func(t *testing.T) {
		mockRepo.EXPECT().GetById(ctx, PostId("missing")).
			Return(nil, fmt.Errorf("post/repo: post missing: %w", ErrNotFound))

		_, err := svc.ToggleLike(ctx, PostId("missing"), "u1")
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
	})

	t.Run("drops blank stored likers", func(t *testing.T) {
		stored := storedPost()
		stored.LikedBy = []string{" ", "u2 ", ""}
		mockRepo.EXPECT().GetById(ctx, stored.Id).Return(stored, nil)

		var replaced *Post
		mockRepo.EXPECT().Replace(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *Post) error {
				replaced = p
				return nil
			})

		_, err := svc.ToggleLike(ctx, stored.Id, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"u2", "u1"}, replaced.LikedBy)
	})
}

func TestAddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockIPostRepo(ctrl)
	svc := NewService(mockRepo)

	t.Run("appends without touching prior comments", func(t *testing.T) {
		existing := Comment{
			Id:         "c1",
			Section:    SectionQuestion,
			AuthorId:   "u1",
			AuthorName: "Ada",
			Content:    "why?",
			CreatedAt:  time.Date(2023, 4, 1, 11, 0, 0, 0, time.UTC),
			Replies:    []Reply{{Id: "r1", ParentId: "c1", Content: "because"}},
		}
		stored := storedPost()
		stored.Comments = []Comment{existing}

		mockRepo.EXPECT().GetById(ctx, stored.Id).Return(stored, nil)

		var replaced *Post
		mockRepo.EXPECT().Replace(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *Post) error {
				replaced = p
				return nil
			})

		view, err := svc.AddComment(ctx, stored.Id, &CreateCommentRequest{
			Section:    "DEBATE",
			AuthorId:   "u2",
			AuthorName: "Grace",
			Content:    "  hi  ",
		})
		require.NoError(t, err)

		require.Len(t, replaced.Comments, 2)
		assert.Equal(t, existing, replaced.Comments[0])
		added := replaced.Comments[1]
		assert.NotEmpty(t, added.Id)
		assert.Equal(t, SectionDebate, added.Section)
		assert.Equal(t, "hi", added.Content)
		assert.Equal(t, []Reply{}, added.Replies)

		assert.Equal(t, "debate", view.Comments[1].Section)
	})

	t.Run("unknown section falls back to default", func(t *testing.T) {
		stored := storedPost()
		mockRepo.EXPECT().GetById(ctx, stored.Id).Return(stored, nil)

		var replaced *Post
		mockRepo.EXPECT().Replace(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *Post) error {
				replaced = p
				return nil
			})

		_, err := svc.AddComment(ctx, stored.Id, &CreateCommentRequest{Section: "weird", Content: "hi"})
		require.NoError(t, err)
		assert.Equal(t, SectionAvis, replaced.Comments[0].Section)
	})

	t.Run("blank content", func(t *testing.T) {
		stored := storedPost()
		mockRepo.EXPECT().GetById(ctx, stored.Id).Return(stored, nil)

		_, err := svc.AddComment(ctx, stored.Id, &CreateCommentRequest{Content: "   "})
		assert.Equal(t, http.StatusBadRequest, apiErrStatus(t, err))
		assert.EqualError(t, err, "Comment content is required")
	})
}

func TestAddReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockIPostRepo(ctrl)
	svc := NewService(mockRepo)

	t.Run("appends to the matched comment", func(t *testing.T) {
		stored := storedPost()
		stored.Comments = []Comment{
			{Id: "c1", Section: SectionAvis, Content: "first", Replies: []Reply{}},
			{Id: "c2", Section: SectionDebate, Content: "second", Replies: []Reply{{Id: "r1", ParentId: "c2", Content: "old"}}},
		}
		mockRepo.EXPECT().GetById(ctx, stored.Id).Return(stored, nil)

		var replaced *Post
		mockRepo.EXPECT().Replace(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *Post) error {
				replaced = p
				return nil
			})

		_, err := svc.AddReply(ctx, stored.Id, "c2", &CreateReplyRequest{AuthorId: "u3", Content: "me too"})
		require.NoError(t, err)

		assert.Equal(t, stored.Comments[0], replaced.Comments[0])
		require.Len(t, replaced.Comments[1].Replies, 2)
		added := replaced.Comments[1].Replies[1]
		assert.Equal(t, "c2", added.ParentId)
		assert.Equal(t, "me too", added.Content)
	})

	t.Run("unknown comment id leaves aggregate alone", func(t *testing.T) {
		stored := storedPost()
		stored.Comments = []Comment{{Id: "c1", Replies: []Reply{}}}
		mockRepo.EXPECT().GetById(ctx, stored.Id).Return(stored, nil)

		_, err := svc.AddReply(ctx, stored.Id, "nope", &CreateReplyRequest{Content: "hi"})
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
		assert.EqualError(t, err, "Comment not found")
	})

	t.Run("blank content", func(t *testing.T) {
		stored := storedPost()
		stored.Comments = []Comment{{Id: "c1", Replies: []Reply{}}}
		mockRepo.EXPECT().GetById(ctx, stored.Id).Return(stored, nil)

		_, err := svc.AddReply(ctx, stored.Id, "c1", &CreateReplyRequest{Content: " "})
		assert.EqualError(t, err, "Reply content is required")
	})
}

func TestFindBySourceURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockIPostRepo(ctrl)
	svc := NewService(mockRepo)

	t.Run("blank input", func(t *testing.T) {
		_, err := svc.FindBySourceURL(ctx, "   ")
		assert.Equal(t, http.StatusBadRequest, apiErrStatus(t, err))
	})

	t.Run("trims before lookup", func(t *testing.T) {
		stored := storedPost()
		mockRepo.EXPECT().GetBySourceURL(ctx, "http://x/1").Return(stored, nil)

		view, err := svc.FindBySourceURL(ctx, " http://x/1 ")
		require.NoError(t, err)
		assert.Equal(t, "p1", view.Id)
	})

	t.Run("no match", func(t *testing.T) {
		mockRepo.EXPECT().GetBySourceURL(ctx, "http://x/9").
			Return(nil, fmt.Errorf("post/repo: post with source http://x/9: %w", ErrNotFound))

		_, err := svc.FindBySourceURL(ctx, "http://x/9")
		assert.Equal(t, http.StatusNotFound, apiErrStatus(t, err))
	})
}
