package socialdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eringen/socialdesk/views"
)

// Store talks to the hosted backend: PostgREST for the posts table, Storage
// for the image bucket. It is constructed once at startup and injected into
// everything that needs data access.
type Store struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
	log     zerolog.Logger

	now func() time.Time // injectable for upload-key tests
}

// NewStore creates a Store for the configured backend project.
func NewStore(cfg Config, log zerolog.Logger) *Store {
	return &Store{
		baseURL: strings.TrimSuffix(cfg.SupabaseURL, "/"),
		apiKey:  cfg.SupabaseKey,
		bucket:  cfg.Bucket,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("component", "store").Logger(),
		now:     time.Now,
	}
}

func (s *Store) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	return req, nil
}

// ListPosts fetches every post, newest first. The result is never nil: a
// backend response with no rows yields an empty slice. Any transport error
// or non-2xx response is reported as a FetchError; the caller gets either
// the full set or a failure, never partial data.
func (s *Store) ListPosts(ctx context.Context) ([]views.Post, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "/rest/v1/posts?select=*&order=created_at.desc", nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Err: backendError(resp)}
	}
	var posts []views.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, &FetchError{Err: err}
	}
	if posts == nil {
		posts = []views.Post{}
	}
	return posts, nil
}

// UpdatePost applies a partial update to one post. Fields absent from the
// payload are left untouched by the backend. Matching no row reports an
// UpdateError wrapping ErrPostNotFound.
func (s *Store) UpdatePost(ctx context.Context, id string, payload UpdatePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &UpdateError{ID: id, Err: err}
	}
	req, err := s.newRequest(ctx, http.MethodPatch, "/rest/v1/posts?id=eq."+url.QueryEscape(id), bytes.NewReader(body))
	if err != nil {
		return &UpdateError{ID: id, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	// Ask for the updated rows back so a zero-row match is detectable.
	req.Header.Set("Prefer", "return=representation")

	resp, err := s.client.Do(req)
	if err != nil {
		return &UpdateError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpdateError{ID: id, Err: backendError(resp)}
	}
	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return &UpdateError{ID: id, Err: err}
	}
	if len(rows) == 0 {
		return &UpdateError{ID: id, Err: ErrPostNotFound}
	}
	return nil
}

// UploadImage stores an image blob under a collision-resistant key derived
// from the upload time and the sanitized original name, and returns the key
// actually used. Oversized decodable images are downscaled first; the key
// rule is unaffected.
func (s *Store) UploadImage(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%d_%s", s.now().UnixMilli(), SanitizeFilename(name))

	data, contentType = shrinkImage(data, contentType)

	req, err := s.newRequest(ctx, http.MethodPut, "/storage/v1/object/"+s.bucket+"/"+escapePath(key), bytes.NewReader(data))
	if err != nil {
		return "", &UploadError{Key: key, Err: err}
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &UploadError{Key: key, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UploadError{Key: key, Err: backendError(resp)}
	}
	s.log.Info().Str("key", key).Int("bytes", len(data)).Msg("image uploaded")
	return key, nil
}

// ImageURL resolves a stored image path to a browser-displayable URL. Empty
// paths resolve to "" (no image); already-absolute URLs pass through
// unchanged; a redundant leading bucket segment is stripped exactly once.
// Public URLs are derivable locally, so this never fails.
func (s *Store) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	clean := CleanImagePath(path, s.bucket)
	return s.baseURL + "/storage/v1/object/public/" + s.bucket + "/" + escapePath(clean)
}

// backendError summarizes a non-2xx backend response, keeping a bounded
// amount of the body for diagnostics.
func backendError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("backend status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// escapePath escapes each segment of a storage path, preserving slashes.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
