package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type httpNoteKeeperAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNoteKeeperAPI constructs the resty-based [NoteKeeperAPI].
// It normalises the base URL from cfg.HTTPAddress ("host:port" gets an
// "http://" scheme) and applies cfg.RequestTimeout to every request.
//
// Returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPNoteKeeperAPI(cfg config.ClientAdapter, logger *logger.Logger) (NoteKeeperAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpNoteKeeperAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNoteKeeperAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = strings.TrimSpace(token)
	h.client.SetBearerToken(h.token)
}

func (h *httpNoteKeeperAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpNoteKeeperAPI) Signup(ctx context.Context, creds models.Credentials) (string, error) {
	return h.authenticate(ctx, "/api/signup", creds)
}

func (h *httpNoteKeeperAPI) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return h.authenticate(ctx, "/api/login", creds)
}

// authenticate posts creds to path and stores the token from the response
// body.
func (h *httpNoteKeeperAPI) authenticate(ctx context.Context, path string, creds models.Credentials) (string, error) {
	var out models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&out).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if out.Token == "" {
		return "", fmt.Errorf("%s: empty token in response", path)
	}

	h.SetToken(out.Token)
	h.logger.Debug().Str("path", path).Msg("token stored")

	return out.Token, nil
}

func (h *httpNoteKeeperAPI) Logout(ctx context.Context) error {
	if h.Token() == "" {
		return ErrNotAuthenticated
	}
	defer h.SetToken("")

	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNoteKeeperAPI) Hello(ctx context.Context) (string, error) {
	if h.Token() == "" {
		return "", ErrNotAuthenticated
	}

	var out models.HelloResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/hello")
	if err != nil {
		return "", fmt.Errorf("hello request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Hello, nil
}

func (h *httpNoteKeeperAPI) CreateNote(ctx context.Context, title, body string) (models.Note, error) {
	if h.Token() == "" {
		return models.Note{}, ErrNotAuthenticated
	}

	var note models.Note
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"title": title, "body": body}).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpNoteKeeperAPI) GetNote(ctx context.Context, id string) (models.Note, error) {
	if h.Token() == "" {
		return models.Note{}, ErrNotAuthenticated
	}

	var note models.Note
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&note).
		Get("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpNoteKeeperAPI) DeleteNote(ctx context.Context, id string) error {
	if h.Token() == "" {
		return ErrNotAuthenticated
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}
