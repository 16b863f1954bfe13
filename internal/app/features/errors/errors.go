// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// pageData is the view model for the shared error page.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// ErrorLogger logs unexpected server faults and shows the shared error page.
// Expected failures (backend down, validation) are handled inline by each
// view and never come through here.
type ErrorLogger struct {
	Log    *zap.Logger
	Render viewdata.Renderer
}

// NewErrorLogger constructs an ErrorLogger rendering through the template engine.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger, Render: viewdata.EngineRenderer{}}
}

// LogServerError logs err at Error and renders a 500 page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.Log.Error(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.render(w, r, http.StatusInternalServerError, "Something went wrong", userMsg)
}

// LogBadRequest logs at Warn and renders a 400 page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.Log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusBadRequest, "Bad request", userMsg)
}

// NotFound renders the 404 page.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, r *http.Request) {
	e.render(w, r, http.StatusNotFound, "Not found", "The page you requested does not exist.")
}

func (e *ErrorLogger) render(w http.ResponseWriter, r *http.Request, status int, title, msg string) {
	if msg == "" {
		msg = "Please try again."
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	e.Render.Page(w, r, "error_page", pageData{
		BaseVM:  viewdata.NewBaseVM(r, title),
		Message: msg,
	})
}
