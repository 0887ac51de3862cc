package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"vestr-cli/internal/domain"
)

// fallbackLoginError is shown when a failure carries no message of its own.
const fallbackLoginError = "Invalid credentials"

// LoginDialog is the single-step credential form.
type LoginDialog struct {
	auth      Authenticator
	onSuccess func(ctx context.Context, user domain.UserData)
	onClose   func()

	mu       sync.Mutex
	open     bool
	username string
	password string
	loading  bool
	errMsg   string
}

func NewLoginDialog(auth Authenticator, onSuccess func(context.Context, domain.UserData), onClose func()) *LoginDialog {
	return &LoginDialog{auth: auth, onSuccess: onSuccess, onClose: onClose, open: true}
}

func (d *LoginDialog) SetUsername(username string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.username = username
}

func (d *LoginDialog) SetPassword(password string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.password = password
}

// CanSubmit is false while a field is empty or a request is in flight.
func (d *LoginDialog) CanSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.canSubmitLocked()
}

func (d *LoginDialog) canSubmitLocked() bool {
	return d.username != "" && d.password != "" && !d.loading
}

func (d *LoginDialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *LoginDialog) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// Error is the message to display after a failed attempt.
func (d *LoginDialog) Error() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}

// Submit posts the credentials. On success it reports the user and closes
// the dialog; on failure it keeps the dialog open with an error message.
func (d *LoginDialog) Submit(ctx context.Context) error {
	d.mu.Lock()
	if !d.canSubmitLocked() {
		d.mu.Unlock()
		return domain.ErrLoginIncomplete
	}
	d.loading = true
	d.errMsg = ""
	creds := domain.Credentials{Username: d.username, Password: d.password}
	d.mu.Unlock()

	profile, err := d.auth.Login(ctx, creds)

	d.mu.Lock()
	d.loading = false
	if err != nil {
		slog.Warn("login failed", "username", creds.Username, "error", err)
		d.errMsg = loginErrorMessage(err)
		d.mu.Unlock()
		return err
	}
	d.mu.Unlock()

	if d.onSuccess != nil {
		d.onSuccess(ctx, profile.ToUserData())
	}
	d.Close()
	return nil
}

// serverMessager is implemented by errors that carry a message written by the backend.
type serverMessager interface {
	ServerMessage() string
}

// loginErrorMessage shows the backend's own message and hides everything
// else (status lines, transport failures) behind the generic fallback.
func loginErrorMessage(err error) string {
	var sm serverMessager
	if errors.As(err, &sm) {
		if msg := sm.ServerMessage(); msg != "" {
			return msg
		}
	}
	return fallbackLoginError
}

// Close hides the dialog.
func (d *LoginDialog) Close() {
	d.mu.Lock()
	wasOpen := d.open
	d.open = false
	d.mu.Unlock()
	if wasOpen && d.onClose != nil {
		d.onClose()
	}
}
