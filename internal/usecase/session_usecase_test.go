package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"photostudio/internal/domain/entities"
	mock_interfaces "photostudio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testUser() entities.User {
	return entities.User{
		ID:        "u-1",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestSessionUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success transitions to authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		identity.EXPECT().Login(gomock.Any(), "jane@example.com", "secret").Return(testUser(), nil)

		uc := NewSessionUseCase(ctx, newMemoryStore(), identity, "")
		state := uc.Login(ctx, "jane@example.com", "secret")

		if state.Phase != entities.SessionAuthenticated {
			t.Fatalf("expected authenticated, got %s", state.Phase)
		}
		if state.User == nil || state.User.Email != "jane@example.com" {
			t.Fatalf("expected user in state, got %+v", state.User)
		}
		if state.User.LastLogin == nil {
			t.Fatalf("expected last login stamp")
		}
	})

	t.Run("failure transitions to failed state, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("invalid credentials"))

		uc := NewSessionUseCase(ctx, newMemoryStore(), identity, "")
		state := uc.Login(ctx, "jane@example.com", "wrong")

		if state.Phase != entities.SessionFailed {
			t.Fatalf("expected failed, got %s", state.Phase)
		}
		if state.Error != "invalid credentials" {
			t.Fatalf("unexpected error message %q", state.Error)
		}
		if state.User != nil {
			t.Fatalf("failed state must not carry a user")
		}
	})

	t.Run("unimplemented provider is a failed state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("authentication service not yet implemented"))

		uc := NewSessionUseCase(ctx, newMemoryStore(), identity, "")
		state := uc.Login(ctx, "jane@example.com", "secret")
		if state.Phase != entities.SessionFailed {
			t.Fatalf("expected failed, got %s", state.Phase)
		}
	})

	t.Run("failed then retry succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		gomock.InOrder(
			identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("invalid credentials")),
			identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUser(), nil),
		)

		uc := NewSessionUseCase(ctx, newMemoryStore(), identity, "")
		if state := uc.Login(ctx, "jane@example.com", "wrong"); state.Phase != entities.SessionFailed {
			t.Fatalf("expected failed first, got %s", state.Phase)
		}
		if state := uc.Login(ctx, "jane@example.com", "secret"); state.Phase != entities.SessionAuthenticated {
			t.Fatalf("expected authenticated on retry, got %s", state.Phase)
		}
	})
}

func TestSessionUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("password confirmation mismatch fails without provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)

		uc := NewSessionUseCase(ctx, newMemoryStore(), identity, "")
		state := uc.Register(ctx, entities.RegisterData{Email: "jane@example.com", Password: "a", ConfirmPassword: "b"})

		if state.Phase != entities.SessionFailed {
			t.Fatalf("expected failed, got %s", state.Phase)
		}
		if state.Error != "Passwords do not match." {
			t.Fatalf("unexpected error %q", state.Error)
		}
	})

	t.Run("success establishes the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		identity.EXPECT().Register(gomock.Any(), gomock.Any()).Return(testUser(), nil)

		uc := NewSessionUseCase(ctx, newMemoryStore(), identity, "")
		state := uc.Register(ctx, entities.RegisterData{Email: "jane@example.com", Password: "a", ConfirmPassword: "a"})
		if state.Phase != entities.SessionAuthenticated {
			t.Fatalf("expected authenticated, got %s", state.Phase)
		}
	})
}

func TestSessionUseCase_Logout(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
	identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUser(), nil)

	store := newMemoryStore()
	uc := NewSessionUseCase(ctx, store, identity, "")
	uc.Login(ctx, "jane@example.com", "secret")

	state := uc.Logout(ctx)
	if state.Phase != entities.SessionAnonymous {
		t.Fatalf("expected anonymous, got %s", state.Phase)
	}
	if _, ok := store.values["photostudio-token"]; ok {
		t.Fatalf("expected token removed")
	}
	if _, ok := store.values["photostudio-user"]; ok {
		t.Fatalf("expected user record removed")
	}

	t.Run("logout while anonymous is harmless", func(t *testing.T) {
		if state := uc.Logout(ctx); state.Phase != entities.SessionAnonymous {
			t.Fatalf("expected anonymous, got %s", state.Phase)
		}
	})
}

func TestSessionUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected while not authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)

		uc := NewSessionUseCase(ctx, newMemoryStore(), identity, "")
		first := "Janet"
		state := uc.UpdateProfile(ctx, ProfileUpdate{FirstName: &first})
		if state.Phase != entities.SessionFailed {
			t.Fatalf("expected failed, got %s", state.Phase)
		}
	})

	t.Run("patches only the provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUser(), nil)

		uc := NewSessionUseCase(ctx, newMemoryStore(), identity, "")
		uc.Login(ctx, "jane@example.com", "secret")

		phone := "+1 555 0101"
		state := uc.UpdateProfile(ctx, ProfileUpdate{Phone: &phone})
		if state.Phase != entities.SessionAuthenticated {
			t.Fatalf("expected authenticated, got %s", state.Phase)
		}
		if state.User.Phone != phone {
			t.Fatalf("expected phone updated, got %q", state.User.Phone)
		}
		if state.User.FirstName != "Jane" {
			t.Fatalf("untouched fields must survive, got %q", state.User.FirstName)
		}
	})
}

func TestSessionUseCase_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("session survives a restart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUser(), nil)

		store := newMemoryStore()
		first := NewSessionUseCase(ctx, store, identity, "test-secret")
		first.Login(ctx, "jane@example.com", "secret")

		restored := NewSessionUseCase(ctx, store, identity, "test-secret")
		state := restored.State()
		if state.Phase != entities.SessionAuthenticated {
			t.Fatalf("expected restored session, got %s", state.Phase)
		}
		if state.User == nil || state.User.ID != "u-1" {
			t.Fatalf("expected restored user, got %+v", state.User)
		}
	})

	t.Run("garbage token is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)

		store := newMemoryStore()
		store.values["photostudio-token"] = "not-a-jwt"

		uc := NewSessionUseCase(ctx, store, identity, "test-secret")
		if uc.State().Phase != entities.SessionAnonymous {
			t.Fatalf("expected anonymous after stale token")
		}
		if _, ok := store.values["photostudio-token"]; ok {
			t.Fatalf("expected stale token removed")
		}
	})

	t.Run("token signed with another secret is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUser(), nil)

		store := newMemoryStore()
		first := NewSessionUseCase(ctx, store, identity, "secret-a")
		first.Login(ctx, "jane@example.com", "secret")

		restored := NewSessionUseCase(ctx, store, identity, "secret-b")
		if restored.State().Phase != entities.SessionAnonymous {
			t.Fatalf("expected anonymous with mismatched secret")
		}
	})

	t.Run("token subject mismatch is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUser(), nil)

		store := newMemoryStore()
		first := NewSessionUseCase(ctx, store, identity, "test-secret")
		first.Login(ctx, "jane@example.com", "secret")

		other := testUser()
		other.ID = "u-999"
		b, _ := json.Marshal(other)
		store.values["photostudio-user"] = string(b)

		restored := NewSessionUseCase(ctx, store, identity, "test-secret")
		if restored.State().Phase != entities.SessionAnonymous {
			t.Fatalf("expected anonymous on subject mismatch")
		}
	})
}
