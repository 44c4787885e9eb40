package socialdesk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) (*Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := &Store{
		baseURL: srv.URL,
		apiKey:  "test-key",
		bucket:  "post_image",
		client:  srv.Client(),
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	return s, srv
}

func TestListPosts(t *testing.T) {
	var gotPath, gotKey, gotAuth string
	s, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `[
			{"id":"2","text":"newer","social_network":"linkedin","status":"Publié"},
			{"id":"1","text":"older","social_network":"twitter","status":"Rejeté"}
		]`)
	})

	posts, err := s.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}

	if gotPath != "/rest/v1/posts" {
		t.Errorf("path = %q, want /rest/v1/posts", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("apikey header = %q, want test-key", gotKey)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization header = %q, want Bearer test-key", gotAuth)
	}

	if len(posts) != 2 {
		t.Fatalf("posts count = %d, want 2", len(posts))
	}
	// Backend ordering is preserved as-is.
	if posts[0].ID != "2" || posts[1].ID != "1" {
		t.Errorf("order = [%s %s], want [2 1]", posts[0].ID, posts[1].ID)
	}
	if posts[0].Text != "newer" || posts[0].SocialNetwork != "linkedin" {
		t.Errorf("first post = %+v", posts[0])
	}
}

func TestListPostsEmpty(t *testing.T) {
	for _, body := range []string{"[]", "null"} {
		s, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		})

		posts, err := s.ListPosts(context.Background())
		if err != nil {
			t.Fatalf("ListPosts(%s) failed: %v", body, err)
		}
		if posts == nil {
			t.Errorf("ListPosts(%s) returned nil, want empty slice", body)
		}
		if len(posts) != 0 {
			t.Errorf("ListPosts(%s) count = %d, want 0", body, len(posts))
		}
	}
}

func TestListPostsBackendError(t *testing.T) {
	s, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := s.ListPosts(context.Background())
	if err == nil {
		t.Fatal("ListPosts should fail on a 500")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("error = %T, want *FetchError", err)
	}
}

func TestUpdatePost(t *testing.T) {
	text := "updated text"
	status := "Validé"
	payload := UpdatePayload{
		Text:               &text,
		Status:             &status,
		PublicationDateSet: true, // explicit null clears the schedule
		ImageSet:           false,
	}

	var gotMethod, gotQuery, gotPrefer string
	var gotBody map[string]json.RawMessage
	s, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		gotPrefer = r.Header.Get("Prefer")
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `[{"id":"42"}]`)
	})

	if err := s.UpdatePost(context.Background(), "42", payload); err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", gotMethod)
	}
	if gotQuery != "id=eq.42" {
		t.Errorf("query = %q, want id=eq.42", gotQuery)
	}
	if gotPrefer != "return=representation" {
		t.Errorf("Prefer header = %q, want return=representation", gotPrefer)
	}

	if string(gotBody["text"]) != `"updated text"` {
		t.Errorf("body text = %s, want %q", gotBody["text"], "updated text")
	}
	if string(gotBody["publication_date"]) != "null" {
		t.Errorf("body publication_date = %s, want null", gotBody["publication_date"])
	}
	if _, ok := gotBody["image"]; ok {
		t.Error("body should not carry image when it was not set")
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	s, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})

	err := s.UpdatePost(context.Background(), "missing", UpdatePayload{})
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("error = %v, want ErrPostNotFound", err)
	}
	var updateErr *UpdateError
	if !errors.As(err, &updateErr) || updateErr.ID != "missing" {
		t.Errorf("error = %#v, want *UpdateError for id missing", err)
	}
}

func TestUploadImageKey(t *testing.T) {
	var gotPath, gotType string
	s, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		io.WriteString(w, `{}`)
	})
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	key, err := s.UploadImage(context.Background(), "my photo.jpg", "image/jpeg", []byte("not really a jpeg"))
	if err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}

	want := "1700000000000_my_photo.jpg"
	if key != want {
		t.Errorf("key = %q, want %q", key, want)
	}
	if gotPath != "/storage/v1/object/post_image/"+want {
		t.Errorf("path = %q, want /storage/v1/object/post_image/%s", gotPath, want)
	}
	if gotType != "image/jpeg" {
		t.Errorf("Content-Type = %q, want image/jpeg", gotType)
	}
}

func TestUploadImageBackendError(t *testing.T) {
	s, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	})

	_, err := s.UploadImage(context.Background(), "x.png", "image/png", []byte("data"))
	if err == nil {
		t.Fatal("UploadImage should fail on a 403")
	}
	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Errorf("error = %T, want *UploadError", err)
	}
}

func TestImageURL(t *testing.T) {
	s := &Store{baseURL: "https://proj.example.co", bucket: "post_image"}

	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"https://elsewhere.example/pic.jpg", "https://elsewhere.example/pic.jpg"},
		{"key.jpg", "https://proj.example.co/storage/v1/object/public/post_image/key.jpg"},
		// A redundant leading bucket segment is stripped exactly once.
		{"post_image/key.jpg", "https://proj.example.co/storage/v1/object/public/post_image/key.jpg"},
		{"post_image/post_image/key.jpg", "https://proj.example.co/storage/v1/object/public/post_image/post_image/key.jpg"},
	}

	for _, tt := range tests {
		if got := s.ImageURL(tt.path); got != tt.want {
			t.Errorf("ImageURL(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
