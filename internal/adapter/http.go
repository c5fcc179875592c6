package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL comes from cfg.HTTPAddress ("http://" is assumed when no
// scheme is given). Requests time out after cfg.RequestTimeout; transport
// errors and 5xx responses are retried cfg.RetryCount times.
//
// Returns [ErrEmptyAddress] if cfg.HTTPAddress is blank.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, ErrEmptyAddress
	}

	client := utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout, cfg.RetryCount)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("auth parse bearer token: %w", err)
	}

	var authResp models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &authResp); err != nil {
		return models.User{}, fmt.Errorf("decode auth response: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: authResp.UserID, Login: authResp.Login}, nil
}

// FetchAll implements [ServerAdapter]. It GETs GET /api/notes/?owner_id=...
func (h *httpServerAdapter) FetchAll(ctx context.Context, ownerID string) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("owner_id", ownerID).
		Get("/api/notes/")
	if err != nil {
		return nil, fmt.Errorf("fetch notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notesResp models.NotesResponse
	if err = json.Unmarshal(resp.Body(), &notesResp); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	notes := make([]models.Note, 0, len(notesResp.Notes))
	for _, n := range notesResp.Notes {
		notes = append(notes, n.Normalized())
	}
	return notes, nil
}

// Create implements [ServerAdapter]. It POSTs the note to POST /api/notes/.
func (h *httpServerAdapter) Create(ctx context.Context, note models.Note) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note.Normalized()).
		Post("/api/notes/")
	if err != nil {
		return fmt.Errorf("create note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Update implements [ServerAdapter]. It PUTs the note to PUT /api/notes/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, note models.Note) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", note.ID).
		SetBody(note.Normalized()).
		Put("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [ServerAdapter]. It GETs GET /api/version/.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var versionResp models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &versionResp); err != nil {
		return "", fmt.Errorf("decode version response: %w", err)
	}
	return versionResp.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
