package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	clock       timezone.Clock
}

func NewAuthHandler(authService auth.AuthService, clock timezone.Clock) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		clock:       clock,
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := decodeJSON(w, r, &registerReq, false); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, a.clock(), "Invalid request format")
		return
	}

	tokenResponse, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, a.clock(), err)
		return
	}

	response.Created(w, a.clock(), tokenResponse)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := decodeJSON(w, r, &loginReq, false); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, a.clock(), "Invalid request format")
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, a.clock(), err)
		return
	}

	response.Success(w, a.clock(), tokenResponse)
}
