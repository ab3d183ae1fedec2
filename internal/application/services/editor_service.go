package services

import (
	"time"

	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/security"
	"golang.org/x/crypto/bcrypt"
)

// AuthResult holds editor authentication result data
type AuthResult struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// EditorService handles inline-editor authentication and session tokens.
type EditorService struct {
	passwordHash string
	jwtSecret    string
	sessionTTL   time.Duration
	logger       *logging.ChanneledLogger
}

// NewEditorService creates an editor authentication service.
func NewEditorService(passwordHash, jwtSecret string, sessionTTL time.Duration, logger *logging.ChanneledLogger) *EditorService {
	return &EditorService{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// Authenticate validates the editor password and generates a session JWT.
func (e *EditorService) Authenticate(password string) *AuthResult {
	if e.passwordHash == "" {
		return &AuthResult{Success: false, Error: "Editor access is not configured"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.passwordHash), []byte(password)); err != nil {
		e.logger.Editor().Warn("Editor login rejected")
		return &AuthResult{Success: false, Error: "Invalid credentials"}
	}

	token, err := security.GenerateEditorToken(e.jwtSecret, e.sessionTTL)
	if err != nil {
		e.logger.Editor().Error("Editor token generation failed", "error", err.Error())
		return &AuthResult{Success: false, Error: "Token generation failed"}
	}

	e.logger.Editor().Info("Editor session opened", "ttl", e.sessionTTL.String())
	return &AuthResult{Token: token, Role: "editor", Success: true}
}

// ValidateSession checks an editor session token.
func (e *EditorService) ValidateSession(token string) bool {
	if token == "" {
		return false
	}
	_, err := security.ValidateEditorToken(token, e.jwtSecret)
	return err == nil
}

// SessionTTL reports the configured session lifetime, used to set the cookie max-age.
func (e *EditorService) SessionTTL() time.Duration {
	return e.sessionTTL
}
