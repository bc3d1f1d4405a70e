package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

const crashMessage = "Сервер сейчас упадёт"

// CrashHandler serves /crash-test: it panics outside any request goroutine
// so nothing recovers it and the process dies, letting a supervisor's
// restart policy be exercised.
type CrashHandler struct {
	Logger *slog.Logger
	Crash  func()
	Delay  time.Duration
}

func NewCrashHandler(logger *slog.Logger) *CrashHandler {
	return &CrashHandler{
		Logger: logger,
		Crash:  func() { panic(crashMessage) },
		Delay:  100 * time.Millisecond,
	}
}

func (h *CrashHandler) CrashTest(w http.ResponseWriter, r *http.Request) {
	h.Logger.Warn("crash test requested", "remote", r.RemoteAddr)
	writeMessage(w, h.Logger, crashMessage)
	time.AfterFunc(h.Delay, h.Crash)
}
