package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"agora/pkg/common"
	"agora/pkg/errs"
	"agora/pkg/logger"
	"agora/pkg/user"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=api

type (
	UserRepo interface {
		Add(context.Context, *user.User) error
		GetByEmail(context.Context, string) (*user.User, error)
		GetById(context.Context, string) (*user.User, error)
	}

	SessionDeleter interface {
		DeleteForUser(ctx context.Context, userId string) error
	}

	UserHandler struct {
		Repo     UserRepo
		Sessions SessionDeleter
	}

	CreateUserRequest struct {
		Name         string `json:"name" validate:"required"`
		Email        string `json:"email" validate:"required"`
		PasswordHash string `json:"passwordHash" validate:"required"`
	}

	UserResponse struct {
		Id        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"createdAt"`
	}

	UserWithPasswordResponse struct {
		Id           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		PasswordHash string    `json:"passwordHash"`
		CreatedAt    time.Time `json:"createdAt"`
	}
)

func NewUserHandler(repo UserRepo, sessions SessionDeleter) *UserHandler {
	return &UserHandler{
		Repo:     repo,
		Sessions: sessions,
	}
}

func (uh *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req := new(CreateUserRequest)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		writeErr(w, r, "can't parse user payload", errs.InvalidArgument("Invalid request body"))
		return
	}
	if err := common.ValidateReq(req); err != nil {
		writeErr(w, r, "invalid user payload", err)
		return
	}

	if common.IsBlank(req.Email) {
		writeErr(w, r, "blank email", errs.InvalidArgument("Email is required"))
		return
	}
	if common.IsBlank(req.Name) {
		writeErr(w, r, "blank name", errs.InvalidArgument("Name is required"))
		return
	}
	if common.IsBlank(req.PasswordHash) {
		writeErr(w, r, "blank password hash", errs.InvalidArgument("Password hash is required"))
		return
	}

	email := strings.ToLower(common.NormalizeText(req.Email))

	// check-then-insert; the unique email index backstops the window
	_, err := uh.Repo.GetByEmail(r.Context(), email)
	if err == nil {
		writeErr(w, r, "duplicate email", errs.Conflict("Email already registered"))
		return
	}
	if !errors.Is(err, user.ErrNotFound) {
		writeErr(w, r, "can't check email", err)
		return
	}

	u := &user.User{
		Id:           common.NewID(),
		Name:         common.NormalizeText(req.Name),
		Email:        email,
		PasswordHash: req.PasswordHash,
		CreatedAt:    common.Now(),
	}
	if err := uh.Repo.Add(r.Context(), u); err != nil {
		writeErr(w, r, "can't add user", err)
		return
	}

	w.Header().Set("Location", "/users/"+u.Id)
	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, toResponse(u))
}

// GetByEmail returns the stored password hash along with the user; the
// caller needs it to verify a login attempt.
func (uh *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	email := r.URL.Query().Get("email")
	if common.IsBlank(email) {
		writeErr(w, r, "blank email", errs.InvalidArgument("Email is required"))
		return
	}

	u, err := uh.Repo.GetByEmail(r.Context(), strings.ToLower(common.NormalizeText(email)))
	if errors.Is(err, user.ErrNotFound) {
		writeErr(w, r, "user not found", errs.NotFound("User not found"))
		return
	}
	if err != nil {
		writeErr(w, r, "can't get user by email", err)
		return
	}

	common.WriteRespJSON(w, toResponseWithPassword(u))
}

func (uh *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userId := mux.Vars(r)["user_id"]
	if common.IsBlank(userId) {
		writeErr(w, r, "blank user id", errs.InvalidArgument("User identifier is required"))
		return
	}

	u, err := uh.Repo.GetById(r.Context(), common.NormalizeText(userId))
	if errors.Is(err, user.ErrNotFound) {
		writeErr(w, r, "user not found", errs.NotFound("User not found"))
		return
	}
	if err != nil {
		writeErr(w, r, "can't get user", err)
		return
	}

	common.WriteRespJSON(w, toResponse(u))
}

func (uh *UserHandler) DeleteSessions(w http.ResponseWriter, r *http.Request) {
	userId := mux.Vars(r)["user_id"]

	if err := uh.Sessions.DeleteForUser(r.Context(), userId); err != nil {
		writeErr(w, r, "can't delete user sessions", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toResponse(u *user.User) *UserResponse {
	return &UserResponse{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toResponseWithPassword(u *user.User) *UserWithPasswordResponse {
	return &UserWithPasswordResponse{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func writeErr(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.Log(r.Context()).Errorf("user/handlers: %s: %v", msg, err)
	errs.Write(w, err)
}
