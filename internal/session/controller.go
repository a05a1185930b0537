// Package session holds the view state machine shared by every binding
// layer. All transition logic lives here; bindings (HTTP, CLI) only call
// methods and render the resulting state.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"cvmatch-backend/internal/accounts"
	"cvmatch-backend/internal/analysis"
	"cvmatch-backend/internal/history"
	"cvmatch-backend/internal/shared/kv"
	"cvmatch-backend/internal/shared/telemetry"
)

// State identifies the active view.
type State string

const (
	StateInput     State = "INPUT"
	StateAnalyzing State = "ANALYZING"
	StateResults   State = "RESULTS"
	// StateError exists for parity with the view enum but is never entered;
	// failures route back to INPUT with ErrorMessage set.
	StateError   State = "ERROR"
	StateAuth    State = "AUTH"
	StateHistory State = "HISTORY"
)

const (
	themeKey   = "theme"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User-facing message for any analysis failure. No partial result is shown.
const analysisFailedMessage = "Analysis failed. Please try again. Ensure both texts are long enough for a meaningful analysis."

var (
	ErrAnalysisInFlight = errors.New("an analysis is already in flight")
	ErrNotSignedIn      = errors.New("no user is signed in")
	ErrNoResult         = errors.New("no analysis result to export")
	ErrItemNotFound     = errors.New("history item not found")
)

// Controller owns the per-session mutable state: current view, input texts,
// the last result, error text, the signed-in user and the theme preference.
type Controller struct {
	mu       sync.Mutex
	accounts *accounts.Store
	history  *history.Store
	client   analysis.Client
	prefs    kv.Store

	state    State
	cvText   string
	jdText   string
	result   *analysis.Result
	errorMsg string
	user     *accounts.User
	theme    string

	now   func() time.Time
	newID func() string
}

// New builds a controller and initializes it from persisted state: the
// active-session pointer and the theme preference.
func New(accountStore *accounts.Store, historyStore *history.Store, client analysis.Client, prefs kv.Store) *Controller {
	c := &Controller{
		accounts: accountStore,
		history:  historyStore,
		client:   client,
		prefs:    prefs,
		state:    StateInput,
		theme:    ThemeLight,
		now:      time.Now,
		newID:    uuid.NewString,
	}

	ctx := context.Background()
	if user, ok := accountStore.CurrentUser(ctx); ok {
		c.user = &user
	}
	if raw, ok, err := prefs.Get(ctx, themeKey); err == nil && ok && raw == ThemeDark {
		c.theme = ThemeDark
	}
	return c
}

// SetInputs replaces the working CV and JD texts.
func (c *Controller) SetInputs(cvText, jdText string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cvText = cvText
	c.jdText = jdText
}

// Submit runs the analysis flow: INPUT -> ANALYZING -> RESULTS on success,
// back to INPUT with error text on failure. While one analysis is in flight
// a second submit is rejected. On success with an active user, the result
// is persisted to history before RESULTS is entered.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateAnalyzing {
		c.mu.Unlock()
		return ErrAnalysisInFlight
	}
	if isBlank(c.cvText) || isBlank(c.jdText) {
		c.errorMsg = "Both the CV and the job description are required."
		c.mu.Unlock()
		return analysis.ErrEmptyInput
	}
	cvText, jdText := c.cvText, c.jdText
	c.state = StateAnalyzing
	c.errorMsg = ""
	c.mu.Unlock()

	// The external call is the one operation that suspends the flow; state
	// is already ANALYZING so concurrent submits bounce off the guard above.
	result, err := c.client.Analyze(ctx, cvText, jdText)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateInput
		c.errorMsg = analysisFailedMessage
		return err
	}

	c.result = &result
	if c.user != nil {
		item := history.Item{
			ID:        c.newID(),
			Timestamp: c.now().UnixMilli(),
			CVText:    cvText,
			JDText:    jdText,
			Result:    result,
		}
		if err := c.history.SaveAnalysis(ctx, c.user.Email, item); err != nil {
			// The result is still shown; history is regenerable.
			telemetry.Warn("session.history_save_failed", map[string]any{"error": err.Error()})
		}
	}
	c.state = StateResults
	return nil
}

// Reset returns to INPUT, clearing the result and error text. Input texts
// are kept so the user can tweak and resubmit.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateInput
	c.result = nil
	c.errorMsg = ""
}

// NavigateAuth switches to the auth view from any state.
func (c *Controller) NavigateAuth() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateAuth
}

// NavigateHistory switches to the history view, substituting the auth view
// when no user is signed in.
func (c *Controller) NavigateHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		c.state = StateAuth
		return
	}
	c.state = StateHistory
}

// Login authenticates against the account store. Success lands in INPUT
// with the session populated; an unknown email surfaces inline.
func (c *Controller) Login(ctx context.Context, email string) error {
	user, err := c.accounts.Login(ctx, email)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			c.errorMsg = "Account not found. Please sign up first."
		} else {
			c.errorMsg = "Login failed. Please try again."
		}
		return err
	}
	c.user = &user
	c.state = StateInput
	c.errorMsg = ""
	return nil
}

// Signup creates an account and signs it in. A taken email surfaces inline.
func (c *Controller) Signup(ctx context.Context, email, name string) error {
	user, err := c.accounts.Signup(ctx, email, name)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrAccountExists):
			c.errorMsg = "Account already exists. Please log in."
		case errors.Is(err, accounts.ErrInvalidInput):
			c.errorMsg = "Please fill in all fields."
		default:
			c.errorMsg = "Signup failed. Please try again."
		}
		return err
	}
	c.user = &user
	c.state = StateInput
	c.errorMsg = ""
	return nil
}

// Logout clears the session, result, error and both input texts, then
// returns to INPUT.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.accounts.Logout(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.result = nil
	c.errorMsg = ""
	c.cvText = ""
	c.jdText = ""
	c.state = StateInput
	return err
}

// History returns the signed-in user's saved analyses, newest first.
func (c *Controller) History(ctx context.Context) ([]history.Item, error) {
	c.mu.Lock()
	user := c.user
	c.mu.Unlock()
	if user == nil {
		return nil, ErrNotSignedIn
	}
	return c.history.GetHistory(ctx, user.Email), nil
}

// SelectHistory restores a saved item's texts and result into the working
// state and enters RESULTS. The stored entry is untouched.
func (c *Controller) SelectHistory(ctx context.Context, id string) error {
	c.mu.Lock()
	user := c.user
	c.mu.Unlock()
	if user == nil {
		return ErrNotSignedIn
	}

	for _, item := range c.history.GetHistory(ctx, user.Email) {
		if item.ID == id {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.cvText = item.CVText
			c.jdText = item.JDText
			result := item.Result
			c.result = &result
			c.errorMsg = ""
			c.state = StateResults
			return nil
		}
	}
	return ErrItemNotFound
}

// DeleteHistory removes a saved item by id. Absent ids are a no-op.
func (c *Controller) DeleteHistory(ctx context.Context, id string) error {
	c.mu.Lock()
	user := c.user
	c.mu.Unlock()
	if user == nil {
		return ErrNotSignedIn
	}
	return c.history.DeleteAnalysis(ctx, user.Email, id)
}

// ExportMarkdown renders the current result as a markdown report.
func (c *Controller) ExportMarkdown() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return "", ErrNoResult
	}
	return analysis.Markdown(*c.result), nil
}

// State returns the active view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the current analysis result, if any.
func (c *Controller) Result() (analysis.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return analysis.Result{}, false
	}
	return *c.result, true
}

// ErrorMessage returns the inline error text for the current view.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorMsg
}

// CurrentUser returns the signed-in user, if any.
func (c *Controller) CurrentUser() (accounts.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return accounts.User{}, false
	}
	return *c.user, true
}

// Inputs returns the working CV and JD texts.
func (c *Controller) Inputs() (cvText, jdText string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cvText, c.jdText
}

// Theme returns the persisted theme preference.
func (c *Controller) Theme() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// ToggleTheme flips between light and dark and persists the choice.
func (c *Controller) ToggleTheme(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.theme == ThemeDark {
		c.theme = ThemeLight
	} else {
		c.theme = ThemeDark
	}
	if err := c.prefs.Set(ctx, themeKey, c.theme); err != nil {
		telemetry.Warn("session.theme_save_failed", map[string]any{"error": err.Error()})
	}
	return c.theme
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
