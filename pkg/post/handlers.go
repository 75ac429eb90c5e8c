package post

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"agora/pkg/common"
	"agora/pkg/errs"
	"agora/pkg/logger"
)

//go:generate mockgen -source=handlers.go -destination=service_mock.go -package=post

type IPostService interface {
	List(context.Context) ([]*PostView, error)
	Get(context.Context, PostId) (*PostView, error)
	Create(context.Context, *CreatePostRequest) (*PostView, error)
	FindBySourceURL(context.Context, string) (*PostView, error)
	ExistsBySourceURL(context.Context, string) (bool, error)
	ToggleLike(context.Context, PostId, string) (*PostView, error)
	AddComment(context.Context, PostId, *CreateCommentRequest) (*PostView, error)
	AddReply(context.Context, PostId, string, *CreateReplyRequest) (*PostView, error)
}

type PostHandler struct {
	Service IPostService
}

func NewPostHandler(service IPostService) *PostHandler {
	return &PostHandler{
		Service: service,
	}
}

type ExistenceResponse struct {
	Exists bool `json:"exists"`
}

func (ph *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	posts, err := ph.Service.List(r.Context())
	if err != nil {
		writeErr(w, r, "can't load posts", err)
		return
	}

	common.WriteRespJSON(w, posts)
}

func (ph *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	postId := PostId(mux.Vars(r)["post_id"])
	post, err := ph.Service.Get(r.Context(), postId)
	if err != nil {
		writeErr(w, r, "can't get post", err)
		return
	}

	common.WriteRespJSON(w, post)
}

func (ph *PostHandler) FindBySource(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	post, err := ph.Service.FindBySourceURL(r.Context(), r.URL.Query().Get("sourceUrl"))
	if err != nil {
		writeErr(w, r, "can't find post by source", err)
		return
	}

	common.WriteRespJSON(w, post)
}

func (ph *PostHandler) SourceExists(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	exists, err := ph.Service.ExistsBySourceURL(r.Context(), r.URL.Query().Get("sourceUrl"))
	if err != nil {
		writeErr(w, r, "can't check post existence", err)
		return
	}

	common.WriteRespJSON(w, ExistenceResponse{Exists: exists})
}

func (ph *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req := new(CreatePostRequest)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		writeErr(w, r, "can't parse post payload", errs.InvalidArgument("Invalid request body"))
		return
	}
	if err := common.ValidateReq(req); err != nil {
		writeErr(w, r, "invalid post payload", err)
		return
	}

	created, err := ph.Service.Create(r.Context(), req)
	if err != nil {
		writeErr(w, r, "can't create post", err)
		return
	}

	w.Header().Set("Location", "/posts/"+created.Id)
	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, created)
}

func (ph *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	postId := PostId(mux.Vars(r)["post_id"])

	req := new(TogglePostLikeRequest)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		writeErr(w, r, "can't parse like payload", errs.InvalidArgument("Invalid request body"))
		return
	}
	if err := common.ValidateReq(req); err != nil {
		writeErr(w, r, "invalid like payload", err)
		return
	}

	updated, err := ph.Service.ToggleLike(r.Context(), postId, req.UserId)
	if err != nil {
		writeErr(w, r, "can't toggle post like", err)
		return
	}

	common.WriteRespJSON(w, updated)
}

func (ph *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	postId := PostId(mux.Vars(r)["post_id"])

	req := new(CreateCommentRequest)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		writeErr(w, r, "can't parse comment payload", errs.InvalidArgument("Invalid request body"))
		return
	}
	if err := common.ValidateReq(req); err != nil {
		writeErr(w, r, "invalid comment payload", err)
		return
	}

	updated, err := ph.Service.AddComment(r.Context(), postId, req)
	if err != nil {
		writeErr(w, r, "can't add comment", err)
		return
	}

	common.WriteRespJSON(w, updated)
}

func (ph *PostHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	postId := PostId(vars["post_id"])
	commentId := vars["comment_id"]

	req := new(CreateReplyRequest)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		writeErr(w, r, "can't parse reply payload", errs.InvalidArgument("Invalid request body"))
		return
	}
	if err := common.ValidateReq(req); err != nil {
		writeErr(w, r, "invalid reply payload", err)
		return
	}

	updated, err := ph.Service.AddReply(r.Context(), postId, commentId, req)
	if err != nil {
		writeErr(w, r, "can't add reply", err)
		return
	}

	common.WriteRespJSON(w, updated)
}

func writeErr(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.Log(r.Context()).Errorf("post/handlers: %s: %v", msg, err)
	errs.Write(w, err)
}
