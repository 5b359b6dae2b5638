package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"photostudio/internal/adapter/http/handlers/mocks"
	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authenticatedState() entities.SessionState {
	return entities.SessionState{
		Phase: entities.SessionAuthenticated,
		User:  &entities.User{ID: "u-1", Email: "jane@example.com", FirstName: "Jane"},
	}
}

func TestSessionHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISessionUseCase(ctrl)
	h := NewSessionHandler(uc)

	r := gin.New()
	r.GET("/v1/auth/session", h.GetSession)

	uc.EXPECT().State().Return(entities.SessionState{Phase: entities.SessionAnonymous})

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["phase"] != "anonymous" {
		t.Fatalf("unexpected phase %v", body["phase"])
	}
	if _, ok := body["user"]; ok {
		t.Fatalf("anonymous state must not carry a user")
	}
}

func TestSessionHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"jane@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success answers 200 with state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "jane@example.com", "secret").Return(authenticatedState())

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"jane@example.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("failed login answers 401 with the failed state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.SessionState{
			Phase: entities.SessionFailed,
			Error: "invalid credentials",
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"jane@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["phase"] != "failed" || body["error"] != "invalid credentials" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestSessionHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISessionUseCase(ctrl)
	h := NewSessionHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/register", h.Register)

	uc.EXPECT().Register(gomock.Any(), entities.RegisterData{
		Email:           "jane@example.com",
		Password:        "a",
		ConfirmPassword: "b",
	}).Return(entities.SessionState{Phase: entities.SessionFailed, Error: "Passwords do not match."})

	payload := `{"email":"jane@example.com","password":"a","confirmPassword":"b"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISessionUseCase(ctrl)
	h := NewSessionHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/logout", h.Logout)

	uc.EXPECT().Logout(gomock.Any()).Return(entities.SessionState{Phase: entities.SessionAnonymous})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSessionHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISessionUseCase(ctrl)
	h := NewSessionHandler(uc)

	r := gin.New()
	r.PATCH("/v1/auth/profile", h.UpdateProfile)

	uc.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, update usecase.ProfileUpdate) entities.SessionState {
			if update.Phone == nil || *update.Phone != "+1 555 0101" {
				t.Fatalf("expected phone patch, got %+v", update)
			}
			if update.FirstName != nil {
				t.Fatalf("absent fields must stay nil")
			}
			return authenticatedState()
		})

	req := httptest.NewRequest(http.MethodPatch, "/v1/auth/profile", bytes.NewBufferString(`{"phone":"+1 555 0101"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
