package blog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-locator/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestPostsBySlug(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/blog")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		require.Equal(t, "pho-corner", r.URL.Query().Get("slug"))
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`[{"id": 7, "slug": "pho-corner", "title": {"rendered": "Pho Corner"}}]`))
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{
		BaseUrl: server.URL + "/index.php/2020/01/pho-corner/",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	raw, err := client.PostsBySlug(ctx, "pho-corner")
	require.NoError(t, err)

	posts, err := ParsePosts(raw)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, int64(7), posts[0].ID)
}

func TestPostsBySlugBadStatus(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/blog")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	_, err = client.PostsBySlug(context.Background(), "missing")
	require.Error(t, err)
}

func TestCheckLink(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/blog")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dead" {
			w.WriteHeader(http.StatusGone)
			return
		}
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	ctx := context.Background()
	require.Equal(t, 200, client.CheckLink(ctx, server.URL+"/alive"))
	require.Equal(t, 410, client.CheckLink(ctx, server.URL+"/dead"))

	server.Close()
	require.Equal(t, 0, client.CheckLink(ctx, server.URL+"/gone"))
}
