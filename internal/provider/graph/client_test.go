package graph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

var testAccount = domain.AccountContext{ProviderAccountID: "1784", AccessToken: "secret-token"}

func TestGetMediaMapsCarouselChildrenInOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/m-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("access_token") != "secret-token" {
			t.Errorf("missing access token")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{
			"id": "m-1",
			"caption": "Shoe Set",
			"media_type": "CAROUSEL_ALBUM",
			"permalink": "https://social.example/p/m-1",
			"children": {"data": [
				{"id": "c-1", "media_type": "IMAGE", "media_url": "https://cdn.example/c1.jpg"},
				{"id": "c-2", "media_type": "VIDEO", "thumbnail_url": "https://cdn.example/c2.jpg"}
			]}
		}`)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	post, err := client.GetMedia(context.Background(), testAccount, "m-1")
	if err != nil {
		t.Fatalf("get media: %v", err)
	}
	if !post.IsCarousel() || post.CaptionText != "Shoe Set" || post.Permalink == "" {
		t.Fatalf("unexpected post: %+v", post)
	}
	if len(post.Items) != 2 || post.Items[0].ExternalChildID != "c-1" || post.Items[1].Kind != domain.MediaKindVideo {
		t.Fatalf("unexpected items: %+v", post.Items)
	}
	if post.Items[1].URL != "" || post.Items[1].ThumbnailURL != "https://cdn.example/c2.jpg" {
		t.Fatalf("expected thumbnail-only child, got %+v", post.Items[1])
	}
}

func TestListMediaFollowsPagingUpToLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("after") == "" {
			if r.URL.Path != "/1784/media" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_, _ = fmt.Fprintf(w, `{"data":[{"id":"p-1","media_type":"IMAGE","media_url":"https://cdn.example/1.jpg"},{"id":"p-2","media_type":"VIDEO","media_url":"https://cdn.example/2.mp4"}],"paging":{"next":"%s/1784/media?after=c2&access_token=leaked"}}`, server.URL)
			return
		}
		if r.URL.Query().Get("access_token") != "secret-token" {
			t.Errorf("paging request must use the account token")
		}
		_, _ = fmt.Fprintf(w, `{"data":[{"id":"p-3","media_type":"IMAGE","media_url":"https://cdn.example/3.jpg"},{"id":"p-4"}],"paging":{"next":"%s/1784/media?after=c4"}}`, server.URL)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	posts, err := client.ListMedia(context.Background(), testAccount, 3)
	if err != nil {
		t.Fatalf("list media: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[2].ExternalID != "p-3" || posts[1].Items[0].Kind != domain.MediaKindVideo {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", calls.Load())
	}
}

func TestListMediaIgnoresForeignPagingHost(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"data":[{"id":"p-1","media_type":"IMAGE","media_url":"https://cdn.example/1.jpg"}],"paging":{"next":"https://evil.example/steal"}}`)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	posts, err := client.ListMedia(context.Background(), testAccount, 10)
	if err != nil {
		t.Fatalf("list media: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
}

func TestGetMediaSurfacesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.GetMedia(context.Background(), testAccount, "m-1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || !strings.Contains(apiErr.Message, "OAuthException") {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestClientTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	client, err := NewClient(server.URL, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.ListMedia(context.Background(), testAccount, 5)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if strings.Contains(err.Error(), "secret-token") {
		t.Fatalf("error leaks access token: %v", err)
	}
}

func TestMissingTokenFailsWithoutRequest(t *testing.T) {
	client, err := NewClient("http://127.0.0.1:1", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.ListMedia(context.Background(), domain.AccountContext{}, 5); !errors.Is(err, errMissingToken) {
		t.Fatalf("expected errMissingToken, got %v", err)
	}
}

func TestToSourcePostAlbumWithoutChildrenKeepsCover(t *testing.T) {
	post, ok := mediaItem{ID: "a-1", MediaType: "CAROUSEL_ALBUM", MediaURL: "https://cdn.example/cover.jpg"}.toSourcePost()
	if !ok {
		t.Fatal("expected post")
	}
	if len(post.Items) != 1 || post.Items[0].Kind != domain.MediaKindImage || post.Items[0].URL == "" {
		t.Fatalf("unexpected items: %+v", post.Items)
	}
	if post.IsCarousel() {
		t.Fatal("expected childless album to import as a single image")
	}
}
