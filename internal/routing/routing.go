package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"moviesexplorer/internal/config"
	"moviesexplorer/pkg/apperr"
	apphandlers "moviesexplorer/pkg/handlers"
	"moviesexplorer/pkg/hasher"
	"moviesexplorer/pkg/middleware"
	"moviesexplorer/pkg/movie"
	"moviesexplorer/pkg/session"
	"moviesexplorer/pkg/user"
)

const shutdownTimeout = 10 * time.Second

// Deps is everything the routes need. Stores are built in main and injected.
type Deps struct {
	Users    user.Repository
	Movies   movie.Repository
	Sessions *session.Manager
	Hasher   hasher.Hasher
	Logger   *slog.Logger
}

func InitRoutes(r *mux.Router, deps Deps) {
	logger := deps.Logger

	userService := user.NewService(deps.Users, deps.Hasher)
	userHandler := apphandlers.NewUserHandler(userService, deps.Sessions, logger)

	movieHandler := apphandlers.NewMovieHandler(movie.NewService(deps.Movies), logger)
	crashHandler := apphandlers.NewCrashHandler(logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := r.NewRoute().Subrouter()
	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.CheckJWT(deps.Sessions, logger))

	/* public routers */
	authRouter.Handle("/signup", signupSchema.Validate(logger)(http.HandlerFunc(userHandler.Register))).Methods("POST").Name("signup")
	authRouter.Handle("/signin", signinSchema.Validate(logger)(http.HandlerFunc(userHandler.Login))).Methods("POST").Name("signin")
	authRouter.HandleFunc("/logout", userHandler.Logout).Methods("POST").Name("logout")
	authRouter.HandleFunc("/crash-test", crashHandler.CrashTest).Methods("GET")

	/* user routers */
	protected.HandleFunc("/users/me", userHandler.GetMe).Methods("GET")
	protected.Handle("/users/me", profileSchema.Validate(logger)(http.HandlerFunc(userHandler.UpdateMe))).Methods("PATCH")

	/* movie routers */
	protected.HandleFunc("/movies", movieHandler.GetAllMovies).Methods("GET")
	protected.Handle("/movies", createMovieSchema.Validate(logger)(http.HandlerFunc(movieHandler.CreateMovie))).Methods("POST")
	protected.Handle("/movies/{movieId}", movieIDSchema.Validate(logger)(http.HandlerFunc(movieHandler.DeleteMovie))).Methods("DELETE")

	r.NotFoundHandler = apperr.NotFoundHandler(logger)
	r.MethodNotAllowedHandler = apperr.NotFoundHandler(logger)
}

// NewRouter builds a router with every route of the service registered.
func NewRouter(deps Deps) *mux.Router {
	r := mux.NewRouter()
	InitRoutes(r, deps)
	return r
}

// Handler wraps the router with the outer middleware chain: CORS, proxy
// headers, rate limiting, access log and panic recovery, outermost first.
func Handler(cfg config.Config, router http.Handler, logger *slog.Logger) http.Handler {
	h := middleware.Panic(logger)(router)
	h = middleware.AccessLog(logger)(h)
	h = middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow, logger).Middleware(h)
	if cfg.TrustProxy {
		h = handlers.ProxyHeaders(h)
	}

	return handlers.CORS(
		handlers.AllowCredentials(),
		handlers.AllowedOriginValidator(originAllowed(cfg.CORSOrigins)),
		handlers.AllowedMethods([]string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}),
		handlers.AllowedHeaders([]string{"Origin", "X-Requested-With", "Content-Type", "Accept"}),
		handlers.ExposedHeaders([]string{"Set-Cookie"}),
	)(h)
}

// originAllowed accepts any origin when the allow-list is empty.
func originAllowed(origins []string) handlers.OriginValidator {
	return func(origin string) bool {
		return len(origins) == 0 || slices.Contains(origins, origin)
	}
}

// StartServer serves h on addr until ctx is cancelled, then drains in-flight
// requests.
func StartServer(ctx context.Context, h http.Handler, addr string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is running", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
