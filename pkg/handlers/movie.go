package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"moviesexplorer/pkg/apperr"
	"moviesexplorer/pkg/movie"
)

const muxVarMovieID = "movieId"

type MovieHandler struct {
	Service movie.ServiceMovie
	Logger  *slog.Logger
}

func NewMovieHandler(service movie.ServiceMovie, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *MovieHandler) GetAllMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.Service.GetAll(r.Context())
	if err != nil {
		apperr.Respond(w, h.Logger, err)
		return
	}

	writeJSON(w, h.Logger, movies)
}

func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	c, ok := getClaimsFromContext(w, r, h.Logger)
	if !ok {
		return
	}

	var newMovie movie.Movie
	if ok := DecodeJSONBody(w, r, h.Logger, &newMovie); !ok {
		return
	}

	if err := h.Service.Create(r.Context(), &newMovie, c.UserID); err != nil {
		apperr.Respond(w, h.Logger, movieError(err))
		return
	}

	if ok := writeJSON(w, h.Logger, newMovie); ok {
		h.Logger.Info("new movie created", "user", c.UserID, "movie", newMovie.ID)
	}
}

func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	c, ok := getClaimsFromContext(w, r, h.Logger)
	if !ok {
		return
	}

	movieID := mux.Vars(r)[muxVarMovieID]

	if err := h.Service.Delete(r.Context(), movieID, c.UserID); err != nil {
		apperr.Respond(w, h.Logger, movieError(err))
		return
	}

	if ok := writeMessage(w, h.Logger, "Пост удален"); ok {
		h.Logger.Info("movie delete", muxVarMovieID, movieID, "user", c.UserID)
	}
}

func movieError(err error) error {
	if badReq := badRequestFromValidation(err); badReq != nil {
		return badReq
	}

	switch {
	case errors.Is(err, movie.ErrInvalidID):
		return apperr.Wrap(apperr.BadRequest, "некорректный id карточки", err)
	case errors.Is(err, movie.ErrNotFound):
		return apperr.Wrap(apperr.NotFound, "нет карточки с таким id", err)
	case errors.Is(err, movie.ErrForbidden):
		return apperr.Wrap(apperr.Forbidden, "нельзя удалить чужую карточку", err)
	default:
		return err
	}
}
