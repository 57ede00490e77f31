package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"fashionblog/internal/blog"
	"fashionblog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *blog.MemoryStore) {
	t.Helper()

	cfg := &config.Config{
		Addr:        ":0",
		SiteBaseURL: "http://example.com",
		TemplateDir: "templates",
		StaticDir:   filepath.Join(t.TempDir(), "static"),
	}

	store := blog.NewMemoryStore(blog.SeedPosts())

	site, err := blog.NewSiteStore(filepath.Join(t.TempDir(), "site.yaml"))
	require.NoError(t, err)

	srv := NewServer(cfg, store, site)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts, store
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestIndex(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "The Rise of Sustainable Fashion")
	assert.Contains(t, body, "Styling a Classic Trench Coat")
	assert.Contains(t, body, `href="/category/Trends"`)
}

func TestPostDetail(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/post/trench-coat-styling")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Styling a Classic Trench Coat")
	assert.Contains(t, body, "timeless trench coat")
}

func TestPostDetail_NotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/post/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
}

func TestUnmatchedPathNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
}

func TestCategoryPage(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/category/Trends")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "The Rise of Sustainable Fashion")
	assert.NotContains(t, body, "Styling a Classic Trench Coat")
}

func TestCategoryPage_EmptyIsNotAnError(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/category/Nope")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No posts in this category.")
}

func TestTagPage(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/tag/classic")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Styling a Classic Trench Coat")
	assert.Contains(t, body, "Inside the Atelier: A Designer Spotlight")
	assert.NotContains(t, body, "The Rise of Sustainable Fashion")
}

func TestTagPage_EmptyIsNotAnError(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/tag/nope")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No posts with this tag.")
}

func TestStaticPages(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/about")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "About")

	resp, body = get(t, ts, "/contact")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "mailto:")
}

func TestAdminDashboard(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/admin")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "3 posts in the store.")
}

func TestAdminNewPostForm(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/admin/new_post")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="title"`)
	assert.Contains(t, body, `name="content"`)
}

func TestAdminCreatePost(t *testing.T) {
	ts, store := newTestServer(t)

	form := url.Values{
		"title":    {"Layering for Late Autumn"},
		"content":  {"Wool first, everything else after."},
		"category": {"Style Tips"},
		"tags":     {"styling, outerwear"},
	}
	resp, err := ts.Client().PostForm(ts.URL+"/admin/new_post", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	// The client follows the redirect back to the dashboard.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Request.URL.Path)

	post, ok := store.GetBySlug("layering-for-late-autumn")
	require.True(t, ok)
	assert.Equal(t, "Style Tips", post.Category)
	assert.Equal(t, []string{"styling", "outerwear"}, post.Tags)
	assert.Equal(t, 4, post.ID)
	assert.NotEmpty(t, post.Date)
}

func TestAdminCreatePost_DuplicateSlug(t *testing.T) {
	ts, store := newTestServer(t)

	form := url.Values{
		"title":   {"Sustainable Fashion"},
		"slug":    {"sustainable-fashion"},
		"content": {"Duplicate."},
	}
	resp, err := ts.Client().PostForm(ts.URL+"/admin/new_post", form)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "already exists")
	assert.Len(t, store.List(), 3)
}

func TestAdminCreatePost_UnknownCategory(t *testing.T) {
	ts, store := newTestServer(t)

	form := url.Values{
		"title":    {"Off the Reference List"},
		"content":  {"Body."},
		"category": {"Couture"},
	}
	resp, err := ts.Client().PostForm(ts.URL+"/admin/new_post", form)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, string(body), "Unknown category")
	assert.Len(t, store.List(), 3)
}

func TestAdminCreatePost_TitleWithoutSlugMaterial(t *testing.T) {
	ts, store := newTestServer(t)

	form := url.Values{
		"title":   {"!!!"},
		"content": {"Body."},
	}
	resp, err := ts.Client().PostForm(ts.URL+"/admin/new_post", form)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, string(body), "letters or digits")
	assert.Len(t, store.List(), 3)
}

func TestRSS(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/feed")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "<rss")
	assert.Contains(t, body, "The Rise of Sustainable Fashion")
	assert.Contains(t, body, "http://example.com/post/sustainable-fashion")
}

func TestSitemap(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts, "/sitemap.xml")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "http://example.com/post/trench-coat-styling")
	assert.Contains(t, body, "http://example.com/category/Trends")
	assert.Contains(t, body, "<urlset")
}

func TestConcurrentRendering(t *testing.T) {
	ts, _ := newTestServer(t)

	// Hit every page while the template cache is still cold so concurrent
	// cache fills race if the map is unguarded.
	paths := []string{
		"/", "/post/sustainable-fashion", "/category/Trends",
		"/tag/classic", "/about", "/contact", "/admin", "/no/such/page",
	}

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		for _, path := range paths {
			wg.Add(1)
			go func(path string) {
				defer wg.Done()
				resp, err := ts.Client().Get(ts.URL + path)
				if err != nil {
					t.Error(err)
					return
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}(path)
		}
	}
	wg.Wait()
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("short", 10))
	long := strings.Repeat("word ", 50)
	got := excerpt(long, 20)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 21)
}
