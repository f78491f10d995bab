package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	testToken  = "header.payload.signature"
	testUserID = "0192f0a4-7c1e-7d6a-9b61-3c1f2e8a4d01"
)

type fakeAuthService struct {
	signupFn func(ctx context.Context, creds models.Credentials) (models.IssuedToken, error)
	loginFn  func(ctx context.Context, creds models.Credentials) (models.IssuedToken, error)
	logoutFn func(ctx context.Context, identity models.Identity) error
	helloFn  func(ctx context.Context, identity models.Identity) (string, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, creds models.Credentials) (models.IssuedToken, error) {
	return f.signupFn(ctx, creds)
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (models.IssuedToken, error) {
	return f.loginFn(ctx, creds)
}

func (f *fakeAuthService) Logout(ctx context.Context, identity models.Identity) error {
	return f.logoutFn(ctx, identity)
}

func (f *fakeAuthService) Hello(ctx context.Context, identity models.Identity) (string, error) {
	return f.helloFn(ctx, identity)
}

type fakeSessionService struct {
	verifyFn func(ctx context.Context, signed string) (models.Identity, error)
}

func (f *fakeSessionService) Issue(context.Context, string) (models.IssuedToken, error) {
	return models.IssuedToken{}, nil
}

func (f *fakeSessionService) Verify(ctx context.Context, signed string) (models.Identity, error) {
	return f.verifyFn(ctx, signed)
}

func (f *fakeSessionService) Revoke(context.Context, string, string) error {
	return nil
}

func (f *fakeSessionService) PurgeExpired(context.Context) (int64, error) {
	return 0, nil
}

type fakeNoteService struct {
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	getFn    func(ctx context.Context, userID, noteID string) (models.Note, error)
	deleteFn func(ctx context.Context, userID, noteID string) error
}

func (f *fakeNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return f.createFn(ctx, note)
}

func (f *fakeNoteService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	return f.getFn(ctx, userID, noteID)
}

func (f *fakeNoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	return f.deleteFn(ctx, userID, noteID)
}

// acceptingSessions verifies testToken as testUserID and rejects the rest.
func acceptingSessions() *fakeSessionService {
	return &fakeSessionService{
		verifyFn: func(_ context.Context, signed string) (models.Identity, error) {
			if signed != testToken {
				return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Identity{UserID: testUserID, Token: "raw-session-token"}, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services:       services,
		requestTimeout: time.Second,
		logger:         logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withTestIdentity attaches the identity the auth middleware would.
func withTestIdentity(r *http.Request) *http.Request {
	identity := models.Identity{UserID: testUserID, Token: "raw-session-token"}
	return r.WithContext(utils.WithIdentity(r.Context(), identity))
}

func newJSONRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return injectNopLogger(req)
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
