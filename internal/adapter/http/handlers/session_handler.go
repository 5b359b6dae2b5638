package handlers

import (
	"net/http"

	request "photostudio/internal/adapter/http/dto/request"
	response "photostudio/internal/adapter/http/dto/response"
	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase"
	"photostudio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// SessionHandler handles HTTP requests for the authentication session.
//
// Every outcome of a session operation is a state, not a transport error:
// a failed login answers with the failed session snapshot and 401, never 500.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// GetSession returns the current session snapshot.
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSessionState(h.usecase.State()))
}

// Login attempts credential authentication.
func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	state := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	c.JSON(sessionStatus(state), response.FromSessionState(state))
}

// Register creates an account and establishes the session on success.
func (h *SessionHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	state := h.usecase.Register(c.Request.Context(), entities.RegisterData{
		Email:           payload.Email,
		Password:        payload.Password,
		ConfirmPassword: payload.ConfirmPassword,
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Phone:           payload.Phone,
	})
	c.JSON(sessionStatus(state), response.FromSessionState(state))
}

// Logout drops the session back to anonymous. Logging out while anonymous is
// a no-op.
func (h *SessionHandler) Logout(c *gin.Context) {
	state := h.usecase.Logout(c.Request.Context())
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

// UpdateProfile patches profile fields of the authenticated user.
func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	state := h.usecase.UpdateProfile(c.Request.Context(), usecase.ProfileUpdate{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Phone:     payload.Phone,
	})
	c.JSON(sessionStatus(state), response.FromSessionState(state))
}

// sessionStatus maps the session phase to an HTTP status: failed outcomes
// answer 401 with the failed snapshot in the body.
func sessionStatus(state entities.SessionState) int {
	if state.Phase == entities.SessionFailed {
		return http.StatusUnauthorized
	}
	return http.StatusOK
}
