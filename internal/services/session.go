package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/primezone/internal/common"
	"github.com/dmitrijs2005/primezone/internal/logging"
	"github.com/dmitrijs2005/primezone/internal/models"
	"github.com/dmitrijs2005/primezone/internal/repositories/metadata"
	"github.com/dmitrijs2005/primezone/internal/roster"
)

// DefaultSyncDelay is the simulated network sync performed before the stored
// session is read.
const DefaultSyncDelay = 800 * time.Millisecond

// AuthResult is the outcome of an access-key attempt. Session is only
// meaningful when Success is true.
type AuthResult struct {
	Success bool
	Session models.Session
}

// SessionService defines session operations.
//
// Contract:
//   - Initialize: wait the sync delay, then restore the stored session.
//   - Authenticate: check an access key and persist the session markers.
//   - Logout: remove the session markers, keeping all other data.
//   - SwitchMember: change the active member and persist it.
//
// Authorization (who may switch to whom) is the caller's concern.
type SessionService interface {
	Initialize(ctx context.Context) (models.Session, error)
	Authenticate(ctx context.Context, key string) (AuthResult, error)
	Logout(ctx context.Context) error
	SwitchMember(ctx context.Context, current models.Session, memberID string) (models.Session, bool, error)
}

type sessionService struct {
	repo  metadata.Repository
	log   logging.Logger
	delay time.Duration
}

// NewSessionService constructs a SessionService over repo. A negative delay
// is treated as zero.
func NewSessionService(repo metadata.Repository, log logging.Logger, delay time.Duration) SessionService {
	if log == nil {
		log = logging.Nop{}
	}
	if delay < 0 {
		delay = 0
	}
	return &sessionService{repo: repo, log: log, delay: delay}
}

// Initialize blocks for the sync delay and then reads the session markers.
// Cancellation during the wait returns ctx.Err() without touching the store.
// Read failures are logged and fall back to a logged-out session.
func (s *sessionService) Initialize(ctx context.Context) (models.Session, error) {
	if err := ctx.Err(); err != nil {
		return models.Session{}, err
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return models.Session{}, ctx.Err()
	case <-timer.C:
	}

	session := models.Session{
		IsLogged:       s.readMarker(ctx, common.KeyLogged) == common.MarkerTrue,
		IsAdmin:        s.readMarker(ctx, common.KeyIsAdmin) == common.MarkerTrue,
		ActiveMemberID: roster.Resolve(s.readMarker(ctx, common.KeyActiveID)).ID,
	}

	s.log.Debug(ctx, "session restored",
		"logged", session.IsLogged, "admin", session.IsAdmin, "active", session.ActiveMemberID)
	return session, nil
}

func (s *sessionService) readMarker(ctx context.Context, key string) string {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "session marker unreadable", "key", key, "error", err)
		return ""
	}
	return string(v)
}

// Authenticate resolves key against the access table. A miss writes nothing.
// On success all three markers are written in one batch.
func (s *sessionService) Authenticate(ctx context.Context, key string) (AuthResult, error) {
	grant, ok := roster.ResolveKey(key)
	if !ok {
		s.log.Info(ctx, "access key rejected")
		return AuthResult{}, nil
	}

	session := models.Session{
		IsLogged:       true,
		IsAdmin:        grant.IsAdmin,
		ActiveMemberID: grant.Member.ID,
	}

	err := s.repo.SetMany(ctx, map[string][]byte{
		common.KeyLogged:   []byte(common.MarkerTrue),
		common.KeyIsAdmin:  []byte(strconv.FormatBool(session.IsAdmin)),
		common.KeyActiveID: []byte(session.ActiveMemberID),
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info(ctx, "logged in", "admin", session.IsAdmin, "active", session.ActiveMemberID)
	return AuthResult{Success: true, Session: session}, nil
}

// Logout removes the session markers. The habit store is left alone.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.repo.DeleteMany(ctx, common.SessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// SwitchMember sets memberID as active. Unknown ids are ignored and reported
// as (current, false, nil).
func (s *sessionService) SwitchMember(ctx context.Context, current models.Session, memberID string) (models.Session, bool, error) {
	if !roster.Valid(memberID) {
		return current, false, nil
	}
	if err := s.repo.Set(ctx, common.KeyActiveID, []byte(memberID)); err != nil {
		return current, false, fmt.Errorf("persist active member: %w", err)
	}

	next := current
	next.ActiveMemberID = memberID
	s.log.Debug(ctx, "active member switched", "from", current.ActiveMemberID, "to", memberID)
	return next, true, nil
}
