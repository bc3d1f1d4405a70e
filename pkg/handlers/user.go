package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"moviesexplorer/pkg/apperr"
	"moviesexplorer/pkg/hasher"
	"moviesexplorer/pkg/session"
	"moviesexplorer/pkg/user"
)

type SignupForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserHandler struct {
	Service  user.ServiceInterface
	Sessions session.Issuer
	Logger   *slog.Logger
}

func NewUserHandler(service user.ServiceInterface, sessions session.Issuer, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service:  service,
		Sessions: sessions,
		Logger:   logger,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req SignupForm
	if ok := DecodeJSONBody(w, r, h.Logger, &req); !ok {
		return
	}

	u, err := h.Service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		apperr.Respond(w, h.Logger, userError(err))
		return
	}

	if ok := writeJSON(w, h.Logger, u); ok {
		h.Logger.Info("register", "user", u.ID)
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, h.Logger, &req); !ok {
		return
	}

	u, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apperr.Respond(w, h.Logger, userError(err))
		return
	}

	token, _, err := h.Sessions.Issue(u.ID)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		apperr.Respond(w, h.Logger, err)
		return
	}
	session.SetCookie(w, token)

	if ok := writeMessage(w, h.Logger, "вы успешно авторизовались"); ok {
		h.Logger.Info("login", "user", u.ID)
	}
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w)
	writeMessage(w, h.Logger, "Вы вышли из аккаунта")
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	c, ok := getClaimsFromContext(w, r, h.Logger)
	if !ok {
		return
	}

	u, err := h.Service.GetByID(r.Context(), c.UserID)
	if err != nil {
		apperr.Respond(w, h.Logger, userError(err))
		return
	}

	writeJSON(w, h.Logger, u)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	c, ok := getClaimsFromContext(w, r, h.Logger)
	if !ok {
		return
	}

	var req ProfileForm
	if ok := DecodeJSONBody(w, r, h.Logger, &req); !ok {
		return
	}

	u, err := h.Service.Update(r.Context(), c.UserID, req.Name, req.Email)
	if err != nil {
		apperr.Respond(w, h.Logger, userError(err))
		return
	}

	if ok := writeJSON(w, h.Logger, u); ok {
		h.Logger.Info("profile updated", "user", u.ID)
	}
}

func userError(err error) error {
	if badReq := badRequestFromValidation(err); badReq != nil {
		return badReq
	}

	switch {
	case errors.Is(err, user.ErrAlreadyExists):
		return apperr.Wrap(apperr.Conflict, "такой пользователь уже существует", err)
	case errors.Is(err, user.ErrInvalidCredentials):
		return apperr.Wrap(apperr.AuthRequired, "Неправильные почта или пароль", err)
	case errors.Is(err, user.ErrInvalidID):
		return apperr.Wrap(apperr.BadRequest, "некорректный id пользователя", err)
	case errors.Is(err, user.ErrNotFound):
		return apperr.Wrap(apperr.NotFound, "нет пользователя с таким id", err)
	case errors.Is(err, hasher.ErrPasswordTooLong):
		return apperr.Wrap(apperr.BadRequest, "пароль не должен быть длиннее 72 байт", err)
	default:
		return err
	}
}
