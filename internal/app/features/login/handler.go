// internal/app/features/login/handler.go
package login

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/givingback/internal/app/features/errors"
	"github.com/dalemusser/givingback/internal/app/system/auditlog"
	"github.com/dalemusser/givingback/internal/app/system/auth"
	"github.com/dalemusser/givingback/internal/app/system/donationapi"
	"github.com/dalemusser/givingback/internal/app/system/timeouts"
	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// genericFailure is shown when the backend rejected the login without text.
const genericFailure = "Login failed. Please try again."

type Handler struct {
	API        *donationapi.Client
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Render     viewdata.Renderer
}

func NewHandler(api *donationapi.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		API:        api,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		AuditLog:   audit,
		Render:     viewdata.EngineRenderer{},
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Username string
	Message  string // success text from the backend
	Error    string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	h.Render.Page(w, r, "login", loginFormData{
		BaseVM: viewdata.NewBaseVM(r, "Login"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLoginPost makes exactly one backend call and reports its outcome on
// the same page. There is no redirect on success.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "login")
	defer cancel()

	res, err := h.API.Login(ctx, username, password)
	if err != nil {
		msg := donationapi.ServerMessage(err)
		h.AuditLog.LoginFailed(r.Context(), r, username, failureReason(msg, err))
		if msg == "" {
			msg = genericFailure
		}
		h.render(w, r, loginFormData{Username: username, Error: msg})
		return
	}

	if err := h.SessionMgr.SignIn(w, r, username, res.Credential); err != nil {
		h.ErrLog.LogServerError(w, r, "login: save session", err, "We could not start your session.")
		return
	}
	h.AuditLog.LoginSuccess(r.Context(), r, username)

	// The page rendered below belongs to the new session.
	r = auth.WithUser(r, &auth.SessionUser{Username: username, Credential: res.Credential})
	h.render(w, r, loginFormData{Username: username, Message: res.Message})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, data loginFormData) {
	data.BaseVM = viewdata.NewBaseVM(r, "Login")
	h.Render.Page(w, r, "login", data)
}

func failureReason(serverMsg string, err error) string {
	if serverMsg != "" {
		return serverMsg
	}
	return err.Error()
}
