package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvmatch-backend/internal/accounts"
	"cvmatch-backend/internal/analysis"
	"cvmatch-backend/internal/server/respond"
	"cvmatch-backend/internal/session"
)

// Handler exposes the session controller over HTTP. All transition logic
// stays in the controller; handlers translate requests and map errors to
// status codes.
type Handler struct {
	Ctrl *session.Controller
}

// NewHandler constructs a Handler.
func NewHandler(ctrl *session.Controller) *Handler {
	return &Handler{Ctrl: ctrl}
}

// RegisterRoutes wires the API routes onto the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/session", h.getSession)

	auth := api.Group("/auth")
	auth.POST("/login", h.login)
	auth.POST("/signup", h.signup)
	auth.POST("/logout", h.logout)
	auth.GET("/me", h.me)

	api.POST("/analyses", h.analyze)
	api.GET("/history", h.listHistory)
	api.POST("/history/:id/select", h.selectHistory)
	api.DELETE("/history/:id", h.deleteHistory)
	api.GET("/export", h.export)
	api.POST("/theme/toggle", h.toggleTheme)
}

type sessionView struct {
	State        session.State  `json:"state"`
	Theme        string         `json:"theme"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	User         *accounts.User `json:"user,omitempty"`
}

func (h *Handler) sessionView() sessionView {
	view := sessionView{
		State:        h.Ctrl.State(),
		Theme:        h.Ctrl.Theme(),
		ErrorMessage: h.Ctrl.ErrorMessage(),
	}
	if user, ok := h.Ctrl.CurrentUser(); ok {
		view.User = &user
	}
	return view
}

func (h *Handler) getSession(c *gin.Context) {
	respond.OK(c, h.sessionView())
}

type authRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handler) login(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, analysis.ErrorCodeValidation, "invalid request body", nil)
		return
	}
	if err := h.Ctrl.Login(c.Request.Context(), req.Email); err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, accounts.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		respond.Error(c, status, analysis.ErrorCodeAuthFailed, h.Ctrl.ErrorMessage(), nil)
		return
	}
	respond.OK(c, h.sessionView())
}

func (h *Handler) signup(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, analysis.ErrorCodeValidation, "invalid request body", nil)
		return
	}
	if err := h.Ctrl.Signup(c.Request.Context(), req.Email, req.Name); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, accounts.ErrAccountExists) {
			status = http.StatusConflict
		}
		respond.Error(c, status, analysis.ErrorCodeAuthFailed, h.Ctrl.ErrorMessage(), nil)
		return
	}
	respond.OK(c, h.sessionView())
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.Ctrl.Logout(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, analysis.ErrorCodeInternal, "logout failed", nil)
		return
	}
	respond.OK(c, h.sessionView())
}

func (h *Handler) me(c *gin.Context) {
	user, ok := h.Ctrl.CurrentUser()
	if !ok {
		respond.Error(c, http.StatusUnauthorized, analysis.ErrorCodeAuthFailed, "no user is signed in", nil)
		return
	}
	respond.OK(c, user)
}

type analyzeRequest struct {
	CVText string `json:"cvText"`
	JDText string `json:"jdText"`
}

type analyzeResponse struct {
	State  session.State   `json:"state"`
	Result analysis.Result `json:"result"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, analysis.ErrorCodeValidation, "invalid request body", nil)
		return
	}
	h.Ctrl.SetInputs(req.CVText, req.JDText)

	if err := h.Ctrl.Submit(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, analysis.ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, analysis.ErrorCodeValidation, h.Ctrl.ErrorMessage(), nil)
		case errors.Is(err, session.ErrAnalysisInFlight):
			respond.Error(c, http.StatusConflict, analysis.ErrorCodeInFlight, "an analysis is already in flight", nil)
		default:
			respond.Error(c, http.StatusBadGateway, analysis.ErrorCodeAnalysisFailed, h.Ctrl.ErrorMessage(), nil)
		}
		return
	}

	result, _ := h.Ctrl.Result()
	respond.OK(c, analyzeResponse{State: h.Ctrl.State(), Result: result})
}

func (h *Handler) listHistory(c *gin.Context) {
	items, err := h.Ctrl.History(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusUnauthorized, analysis.ErrorCodeAuthFailed, "sign in to view history", nil)
		return
	}
	respond.OK(c, gin.H{"items": items})
}

func (h *Handler) selectHistory(c *gin.Context) {
	err := h.Ctrl.SelectHistory(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, session.ErrNotSignedIn):
		respond.Error(c, http.StatusUnauthorized, analysis.ErrorCodeAuthFailed, "sign in to view history", nil)
	case errors.Is(err, session.ErrItemNotFound):
		respond.Error(c, http.StatusNotFound, analysis.ErrorCodeNotFound, "history item not found", nil)
	case err != nil:
		respond.Error(c, http.StatusInternalServerError, analysis.ErrorCodeInternal, "select failed", nil)
	default:
		result, _ := h.Ctrl.Result()
		respond.OK(c, analyzeResponse{State: h.Ctrl.State(), Result: result})
	}
}

func (h *Handler) deleteHistory(c *gin.Context) {
	err := h.Ctrl.DeleteHistory(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, session.ErrNotSignedIn):
		respond.Error(c, http.StatusUnauthorized, analysis.ErrorCodeAuthFailed, "sign in to manage history", nil)
	case err != nil:
		respond.Error(c, http.StatusInternalServerError, analysis.ErrorCodeInternal, "delete failed", nil)
	default:
		respond.OK(c, gin.H{"deleted": c.Param("id")})
	}
}

func (h *Handler) export(c *gin.Context) {
	doc, err := h.Ctrl.ExportMarkdown()
	if err != nil {
		respond.Error(c, http.StatusNotFound, analysis.ErrorCodeNotFound, "no analysis result to export", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="CV_Analysis_Report.md"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
}

func (h *Handler) toggleTheme(c *gin.Context) {
	theme := h.Ctrl.ToggleTheme(c.Request.Context())
	respond.OK(c, gin.H{"theme": theme})
}
