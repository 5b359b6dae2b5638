package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"

	"github.com/dgrijalva/jwt-go"
)

const (
	sessionTokenKey = "photostudio-token"
	sessionUserKey  = "photostudio-user"

	sessionTokenTTL = 24 * time.Hour
)

const defaultSessionSecret = "photostudio-dev-secret"

// ProfileUpdate carries the fields a customer may change on their own
// record. Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// sessionClaims is the JWT payload minted for a logged-in customer.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// ISessionUseCase owns the authenticated-user session state machine:
// anonymous -> authenticating -> authenticated | failed, logout back to
// anonymous at any time, failed -> authenticating on retry.
//
// Every operation resolves to a state transition; identity-provider failures
// (including "not yet implemented") become a failed state, never an error
// escaping this boundary. At most one authentication operation is in flight
// per instance; re-invocations while loading observe the authenticating
// state.

type ISessionUseCase interface {
	Login(ctx context.Context, email, password string) entities.SessionState
	Register(ctx context.Context, data entities.RegisterData) entities.SessionState
	Logout(ctx context.Context) entities.SessionState
	UpdateProfile(ctx context.Context, update ProfileUpdate) entities.SessionState
	State() entities.SessionState
}

type SessionUseCase struct {
	store    interfaces.ISnapshotStore
	identity interfaces.IIdentityGateway
	secret   []byte

	mu        sync.Mutex
	loading   bool
	state     entities.SessionState
	listeners []func(entities.SessionState)
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(ctx context.Context, store interfaces.ISnapshotStore, identity interfaces.IIdentityGateway, secret string) *SessionUseCase {
	if secret == "" {
		secret = defaultSessionSecret
	}
	u := &SessionUseCase{
		store:    store,
		identity: identity,
		secret:   []byte(secret),
		state:    entities.SessionState{Phase: entities.SessionAnonymous},
	}
	u.restore(ctx)
	return u
}

// Subscribe registers an observer invoked with the new state after every
// transition.
func (u *SessionUseCase) Subscribe(fn func(entities.SessionState)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.listeners = append(u.listeners, fn)
}

func (u *SessionUseCase) State() entities.SessionState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *SessionUseCase) Login(ctx context.Context, email, password string) entities.SessionState {
	if !u.begin() {
		return u.State()
	}

	log.Printf("[session][usecase] login start email=%s", email)
	user, err := u.identity.Login(ctx, email, password)
	if err != nil {
		log.Printf("[session][usecase] login failed email=%s err=%v", email, err)
		return u.fail(err)
	}

	return u.establish(ctx, user, "login")
}

func (u *SessionUseCase) Register(ctx context.Context, data entities.RegisterData) entities.SessionState {
	if data.Password != data.ConfirmPassword {
		log.Printf("[session][usecase] register rejected email=%s (password confirmation mismatch)", data.Email)
		return u.transition(entities.SessionState{Phase: entities.SessionFailed, Error: "Passwords do not match."})
	}

	if !u.begin() {
		return u.State()
	}

	log.Printf("[session][usecase] register start email=%s", data.Email)
	user, err := u.identity.Register(ctx, data)
	if err != nil {
		log.Printf("[session][usecase] register failed email=%s err=%v", data.Email, err)
		return u.fail(err)
	}

	return u.establish(ctx, user, "register")
}

// Logout clears the persisted session and transitions to anonymous
// unconditionally; calling it while already anonymous is harmless.
func (u *SessionUseCase) Logout(ctx context.Context) entities.SessionState {
	if err := u.store.Remove(ctx, sessionTokenKey); err != nil {
		log.Printf("[session][usecase] token remove failed err=%v", err)
	}
	if err := u.store.Remove(ctx, sessionUserKey); err != nil {
		log.Printf("[session][usecase] user remove failed err=%v", err)
	}
	log.Printf("[session][usecase] logout")
	return u.transition(entities.SessionState{Phase: entities.SessionAnonymous})
}

func (u *SessionUseCase) UpdateProfile(ctx context.Context, update ProfileUpdate) entities.SessionState {
	u.mu.Lock()
	if u.state.Phase != entities.SessionAuthenticated || u.state.User == nil {
		u.mu.Unlock()
		log.Printf("[session][usecase] profile update rejected (no authenticated user)")
		return u.transition(entities.SessionState{Phase: entities.SessionFailed, Error: "You must be signed in to update your profile."})
	}

	user := *u.state.User
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	u.mu.Unlock()

	u.persistUser(ctx, user)
	log.Printf("[session][usecase] profile updated user_id=%s", user.ID)
	return u.transition(entities.SessionState{Phase: entities.SessionAuthenticated, User: &user})
}

// begin flips the loading flag; a false return means another auth operation
// is already in flight.
func (u *SessionUseCase) begin() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.loading {
		return false
	}
	u.loading = true
	u.state = entities.SessionState{Phase: entities.SessionAuthenticating}
	u.notifyLocked()
	return true
}

func (u *SessionUseCase) fail(err error) entities.SessionState {
	u.mu.Lock()
	u.loading = false
	u.mu.Unlock()
	return u.transition(entities.SessionState{Phase: entities.SessionFailed, Error: err.Error()})
}

func (u *SessionUseCase) establish(ctx context.Context, user entities.User, op string) entities.SessionState {
	now := time.Now().UTC()
	user.LastLogin = &now

	token, err := u.mintToken(user, now)
	if err != nil {
		log.Printf("[session][usecase] %s token mint failed user_id=%s err=%v", op, user.ID, err)
		u.mu.Lock()
		u.loading = false
		u.mu.Unlock()
		return u.transition(entities.SessionState{Phase: entities.SessionFailed, Error: "Could not establish a session. Please try again."})
	}

	if err := u.store.Set(ctx, sessionTokenKey, token); err != nil {
		log.Printf("[session][usecase] token write failed err=%v", err)
	}
	u.persistUser(ctx, user)

	u.mu.Lock()
	u.loading = false
	u.mu.Unlock()

	log.Printf("[session][usecase] %s success user_id=%s email=%s", op, user.ID, user.Email)
	return u.transition(entities.SessionState{Phase: entities.SessionAuthenticated, User: &user})
}

func (u *SessionUseCase) mintToken(user entities.User, now time.Time) (string, error) {
	claims := &sessionClaims{
		Email: user.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(sessionTokenTTL).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

func (u *SessionUseCase) parseToken(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// restore rebuilds the session from the snapshot store at startup. A token
// without a matching, consistent user record is stale: both keys are removed
// and the session stays anonymous.
func (u *SessionUseCase) restore(ctx context.Context) {
	token, found, err := u.store.Get(ctx, sessionTokenKey)
	if err != nil || !found {
		if err != nil {
			log.Printf("[session][usecase] token load failed; staying anonymous err=%v", err)
		}
		return
	}

	claims, err := u.parseToken(token)
	if err != nil {
		log.Printf("[session][usecase] stale token discarded err=%v", err)
		u.discardSession(ctx)
		return
	}

	rawUser, found, err := u.store.Get(ctx, sessionUserKey)
	if err != nil || !found {
		log.Printf("[session][usecase] token without user record; staying anonymous")
		u.discardSession(ctx)
		return
	}

	var user entities.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == "" {
		log.Printf("[session][usecase] user record parse failed; staying anonymous err=%v", err)
		u.discardSession(ctx)
		return
	}
	if !strings.EqualFold(user.ID, claims.Subject) {
		log.Printf("[session][usecase] token subject mismatch; staying anonymous")
		u.discardSession(ctx)
		return
	}

	u.state = entities.SessionState{Phase: entities.SessionAuthenticated, User: &user}
	log.Printf("[session][usecase] session restored user_id=%s", user.ID)
}

func (u *SessionUseCase) discardSession(ctx context.Context) {
	if err := u.store.Remove(ctx, sessionTokenKey); err != nil {
		log.Printf("[session][usecase] stale token remove failed err=%v", err)
	}
	if err := u.store.Remove(ctx, sessionUserKey); err != nil {
		log.Printf("[session][usecase] stale user remove failed err=%v", err)
	}
}

func (u *SessionUseCase) persistUser(ctx context.Context, user entities.User) {
	b, err := json.Marshal(user)
	if err != nil {
		log.Printf("[session][usecase] user marshal failed err=%v", err)
		return
	}
	if err := u.store.Set(ctx, sessionUserKey, string(b)); err != nil {
		log.Printf("[session][usecase] user write failed err=%v", err)
	}
}

func (u *SessionUseCase) transition(next entities.SessionState) entities.SessionState {
	u.mu.Lock()
	u.state = next
	u.notifyLocked()
	u.mu.Unlock()
	return next
}

func (u *SessionUseCase) notifyLocked() {
	for _, fn := range u.listeners {
		fn(u.state)
	}
}
