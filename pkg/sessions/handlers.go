package sessions

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"agora/pkg/common"
	"agora/pkg/errs"
	"agora/pkg/logger"
	"agora/pkg/user"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=sessions

type ISessionManager interface {
	Create(context.Context, *CreateSessionRequest) (*Session, error)
	Validate(context.Context, string) (*user.User, error)
	Delete(context.Context, string) error
}

type SessionHandler struct {
	Manager ISessionManager
}

func NewSessionHandler(manager ISessionManager) *SessionHandler {
	return &SessionHandler{
		Manager: manager,
	}
}

type ValidateSessionRequest struct {
	TokenHash string `json:"tokenHash" validate:"required"`
}

func (sh *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req := new(CreateSessionRequest)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		writeErr(w, r, "can't parse session payload", errs.InvalidArgument("Invalid request body"))
		return
	}
	if err := common.ValidateReq(req); err != nil {
		writeErr(w, r, "invalid session payload", err)
		return
	}

	created, err := sh.Manager.Create(r.Context(), req)
	if err != nil {
		writeErr(w, r, "can't create session", err)
		return
	}

	w.Header().Set("Location", "/sessions/"+created.TokenHash)
	w.WriteHeader(http.StatusCreated)
	common.WriteRespJSON(w, created)
}

func (sh *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tokenHash := mux.Vars(r)["token_hash"]

	if err := sh.Manager.Delete(r.Context(), tokenHash); err != nil {
		writeErr(w, r, "can't delete session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (sh *SessionHandler) Validate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req := new(ValidateSessionRequest)
	if err := common.ParseReqBody(r.Body, req); err != nil {
		writeErr(w, r, "can't parse validate payload", errs.InvalidArgument("Invalid request body"))
		return
	}
	if err := common.ValidateReq(req); err != nil {
		writeErr(w, r, "invalid validate payload", err)
		return
	}

	u, err := sh.Manager.Validate(r.Context(), req.TokenHash)
	if err != nil {
		writeErr(w, r, "can't validate session", err)
		return
	}

	common.WriteRespJSON(w, u)
}

func writeErr(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.Log(r.Context()).Errorf("sessions/handlers: %s: %v", msg, err)
	errs.Write(w, err)
}
