package assets_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"Recipe-Publisher/pkg/assets"
	"Recipe-Publisher/pkg/sanity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return "s3://bucket/" + key, nil
}

type mirrorFixture struct {
	store        *httptest.Server
	cdn          *httptest.Server
	cdnRequests  atomic.Int32
	failImageDEF bool
}

func newMirrorFixture(t *testing.T) *mirrorFixture {
	t.Helper()
	f := &mirrorFixture{}

	f.cdn = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.cdnRequests.Add(1)
		switch r.URL.Path {
		case "/logo.svg":
			_, _ = io.WriteString(w, `<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
		case "/favicon":
			_, _ = w.Write(pngBytes)
		case "/abc-10x10.jpg":
			_, _ = io.WriteString(w, "jpg")
		case "/def":
			if f.failImageDEF {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = io.WriteString(w, "def")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.cdn.Close)

	shared := fmt.Sprintf(`{"asset":{"_id":"image-abc-10x10-jpg","url":"%s/abc-10x10.jpg"}}`, f.cdn.URL)
	settings := fmt.Sprintf(`{"result":{"siteName":"Test Kitchen","logo":{"asset":{"_id":"image-l","url":"%[1]s/logo.svg"}},"favicon":{"asset":{"_id":"image-f","url":"%[1]s/favicon"}}}}`, f.cdn.URL)
	docs := fmt.Sprintf(`{"result":[
		{"_id":"r1","_type":"recipe","mainImage":%[1]s,"articleContent":{"firstImage":%[1]s,"secondImage":{"asset":{"_id":"image-def","url":"%[2]s/def"}}}},
		{"_id":"a1","_type":"author","image":%[1]s},
		{"_id":"c1","_type":"category","image":null}
	]}`, shared, f.cdn.URL)

	f.store = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("query"), "siteSettings") {
			_, _ = io.WriteString(w, settings)
			return
		}
		_, _ = io.WriteString(w, docs)
	}))
	t.Cleanup(f.store.Close)
	return f
}

func (f *mirrorFixture) service(publicDir string, publisher assets.Publisher) assets.MirrorService {
	client := sanity.NewClient(sanity.Config{
		ProjectID:  "proj",
		Dataset:    "production",
		APIVersion: "2023-11-01",
		BaseURL:    f.store.URL,
	}, f.store.Client())
	return assets.NewMirrorService(client, assets.NewDownloader(f.cdn.Client()), publisher, assets.MirrorConfig{
		PublicDir:     publicDir,
		QueueInterval: time.Millisecond,
	})
}

func TestMirrorDownloadsThenSkips(t *testing.T) {
	f := newMirrorFixture(t)
	publicDir := t.TempDir()
	publisher := &recordingPublisher{}
	svc := f.service(publicDir, publisher)

	result, err := svc.Mirror(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Queued)
	assert.Len(t, result.Downloaded, 4)
	assert.Equal(t, int32(4), f.cdnRequests.Load())

	assert.FileExists(t, filepath.Join(publicDir, "assets", "drawable", "logo.svg"))
	assert.FileExists(t, filepath.Join(publicDir, "favicon.png"))
	assert.FileExists(t, filepath.Join(publicDir, "assets", "images", "image-abc-10x10-jpg.jpg"))
	assert.FileExists(t, filepath.Join(publicDir, "assets", "images", "image-def.webp"))

	assert.ElementsMatch(t, []string{
		"assets/drawable/logo.svg",
		"favicon.png",
		"assets/images/image-abc-10x10-jpg.jpg",
		"assets/images/image-def.webp",
	}, publisher.keys)

	again, err := svc.Mirror(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, again.Queued)
	assert.Equal(t, 4, again.Skipped)
	assert.Equal(t, int32(4), f.cdnRequests.Load(), "second run must not download anything")
}

func TestMirrorIsolatesFailures(t *testing.T) {
	f := newMirrorFixture(t)
	f.failImageDEF = true
	publicDir := t.TempDir()

	result, err := f.service(publicDir, nil).Mirror(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Downloaded, 3)

	matches, _ := filepath.Glob(filepath.Join(publicDir, "assets", "images", "image-def.*"))
	assert.Empty(t, matches)
}

func TestMirrorWithoutProjectIsNoop(t *testing.T) {
	svc := assets.NewMirrorService(nil, assets.NewDownloader(nil), nil, assets.MirrorConfig{PublicDir: t.TempDir()})

	result, err := svc.Mirror(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Queued)
}
