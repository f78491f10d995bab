package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/models"
)

const testSessionTTL = 12 * time.Hour

func testAppConfig() config.App {
	return config.App{
		CipherPassword:     "test-cipher-password",
		CipherSalt:         "test-cipher-salt",
		EmailIndexKey:      "test-email-index-key",
		TokenSignKey:       "test-token-sign-key",
		TokenSignAlgorithm: "HS256",
		TokenIssuer:        "go-note-keeper",
		SessionTTL:         testSessionTTL,
		HashIterations:     10,
		LogLevel:           "debug",
	}
}

var (
	securityOnce   sync.Once
	sharedSecurity Security
	securityErr    error
)

// testSecurity builds the crypto bundle once per test binary; deriving the
// cipher key is slow.
func testSecurity(t *testing.T) Security {
	t.Helper()
	securityOnce.Do(func() {
		sharedSecurity, securityErr = NewSecurity(testAppConfig())
	})
	require.NoError(t, securityErr)
	return sharedSecurity
}

// fixedClock returns a clock frozen at a second-aligned moment close to the
// real time, so signed tokens are not expired by the real-time parser.
func fixedClock() (time.Time, func() time.Time) {
	now := time.Now().UTC().Truncate(time.Second)
	return now, func() time.Time { return now }
}

type sequenceIDs struct {
	mu   sync.Mutex
	ids  []string
	next int
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids[s.next%len(s.ids)]
	s.next++
	return id
}

// recordingScheduler keeps scheduled jobs so tests can run them explicitly.
type recordingScheduler struct {
	mu   sync.Mutex
	jobs []func(ctx context.Context)
	full bool
}

func (s *recordingScheduler) Schedule(job func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.full {
		return false
	}
	s.jobs = append(s.jobs, job)
	return true
}

func (s *recordingScheduler) runAll(ctx context.Context) {
	s.mu.Lock()
	jobs := s.jobs
	s.jobs = nil
	s.mu.Unlock()
	for _, job := range jobs {
		job(ctx)
	}
}

type mockSessionService struct {
	issueFn  func(ctx context.Context, userID string) (models.IssuedToken, error)
	verifyFn func(ctx context.Context, signed string) (models.Identity, error)
	revokeFn func(ctx context.Context, userID, token string) error
	purgeFn  func(ctx context.Context) (int64, error)
}

func (m *mockSessionService) Issue(ctx context.Context, userID string) (models.IssuedToken, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, userID)
	}
	return models.IssuedToken{SignedString: "signed-" + userID}, nil
}

func (m *mockSessionService) Verify(ctx context.Context, signed string) (models.Identity, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, signed)
	}
	return models.Identity{}, ErrTokenIsExpiredOrInvalid
}

func (m *mockSessionService) Revoke(ctx context.Context, userID, token string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, userID, token)
	}
	return nil
}

func (m *mockSessionService) PurgeExpired(ctx context.Context) (int64, error) {
	if m.purgeFn != nil {
		return m.purgeFn(ctx)
	}
	return 0, nil
}

type mockNoteService struct {
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	getFn    func(ctx context.Context, userID, noteID string) (models.Note, error)
	deleteFn func(ctx context.Context, userID, noteID string) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, noteID)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, noteID)
	}
	return nil
}
