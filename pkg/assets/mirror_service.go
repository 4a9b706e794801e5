package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"Recipe-Publisher/entities"
	"Recipe-Publisher/pkg/sanity"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	DefaultQueueInterval = 100 * time.Millisecond

	mediaSettingsQuery = `*[_type == "siteSettings" && published == true && ($siteId == "" || siteId.current == $siteId)][0] {
    siteName,
    logo{ asset->{ _id, url, originalFilename } },
    favicon{ asset->{ _id, url, originalFilename } }
  }`

	mediaDocumentsQuery = `*[_type in ["recipe", "post", "category", "author", "page"]] {
    _id,
    _type,
    title,
    name,
    mainImage{ asset->{ _id, url } },
    image{ asset->{ _id, url } },
    images[]{ asset->{ _id, url } },
    heroImage{ asset->{ _id, url } },
    gallery[]{ asset->{ _id, url } },
    articleContent{
      firstImage{ asset->{ _id, url } },
      secondImage{ asset->{ _id, url } },
      images[]{ asset->{ _id, url } }
    }
  }`
)

type (
	// Publisher receives every newly mirrored file, keyed by its path relative to the
	// public directory.
	Publisher interface {
		Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	}

	MirrorConfig struct {
		PublicDir string
		SiteID    string
		// QueueInterval spaces out the start of non-priority downloads.
		QueueInterval time.Duration
	}

	MirrorResult struct {
		Queued     int
		Skipped    int
		Downloaded []string
		Failed     int
	}

	MirrorService interface {
		Mirror(ctx context.Context) (MirrorResult, error)
	}

	mirrorService struct {
		client     sanity.Client
		downloader *Downloader
		publisher  Publisher
		cfg        MirrorConfig
	}

	downloadJob struct {
		url         string
		dir         string
		base        string
		fallbackExt string
		priority    bool
	}

	mediaSettings struct {
		SiteName string          `json:"siteName"`
		Logo     *entities.Image `json:"logo"`
		Favicon  *entities.Image `json:"favicon"`
	}
)

// NewMirrorService wires the asset mirror. publisher may be nil.
func NewMirrorService(client sanity.Client, downloader *Downloader, publisher Publisher, cfg MirrorConfig) MirrorService {
	if cfg.QueueInterval <= 0 {
		cfg.QueueInterval = DefaultQueueInterval
	}
	return &mirrorService{
		client:     client,
		downloader: downloader,
		publisher:  publisher,
		cfg:        cfg,
	}
}

func (s *mirrorService) drawableDir() string {
	return filepath.Join(s.cfg.PublicDir, "assets", "drawable")
}

func (s *mirrorService) imagesDir() string {
	return filepath.Join(s.cfg.PublicDir, "assets", "images")
}

// Mirror downloads every referenced image that is not already present locally. A
// failed download never stops the others; the first error is returned after all
// downloads finish.
func (s *mirrorService) Mirror(ctx context.Context) (MirrorResult, error) {
	var result MirrorResult

	if s.client == nil || s.client.ProjectID() == "" {
		log.Warn().Msg("No content store project configured, nothing to mirror")
		return result, nil
	}
	log.Info().Str("project", s.client.ProjectID()).Str("dataset", s.client.Dataset()).Msg("Starting asset mirror")

	jobs, err := s.plan(ctx)
	if err != nil {
		return result, err
	}

	pending := make([]downloadJob, 0, len(jobs))
	for _, job := range jobs {
		exists, err := Exists(job.dir, job.base)
		if err != nil {
			return result, fmt.Errorf("check existing %s: %w", job.base, err)
		}
		if exists {
			log.Debug().Str("file", job.base).Msg("Skipping existing asset")
			result.Skipped++
			continue
		}
		pending = append(pending, job)
	}
	result.Queued = len(pending)

	if len(pending) == 0 {
		log.Info().Msg("No new assets to download")
		return result, nil
	}

	var (
		g       errgroup.Group
		mu      sync.Mutex
		limiter = rate.NewLimiter(rate.Every(s.cfg.QueueInterval), 1)
	)
	for _, job := range pending {
		job := job // per-iteration copy; toolchain is go1.21 (pre-1.22 loopvar semantics)
		if !job.priority {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
		}

		g.Go(func() error {
			log.Info().Str("url", job.url).Msg("Downloading")
			path, err := s.downloader.Download(ctx, job.url, job.dir, job.base, job.fallbackExt)
			if err != nil {
				log.Error().Err(err).Str("url", job.url).Msg("Download failed")
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return err
			}
			log.Info().Str("path", path).Msg("Saved")

			mu.Lock()
			result.Downloaded = append(result.Downloaded, path)
			mu.Unlock()

			s.publish(ctx, path)
			return nil
		})
	}

	err = g.Wait()
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	log.Info().Int("downloaded", len(result.Downloaded)).Int("failed", result.Failed).Int("skipped", result.Skipped).Msg("Asset mirror finished")
	return result, err
}

func (s *mirrorService) plan(ctx context.Context) ([]downloadJob, error) {
	params := map[string]interface{}{"siteId": s.cfg.SiteID}
	projectID, dataset := s.client.ProjectID(), s.client.Dataset()
	jobs := []downloadJob{}

	var settings *mediaSettings
	if err := s.client.Fetch(ctx, mediaSettingsQuery, params, &settings); err != nil {
		return nil, fmt.Errorf("fetch site settings: %w", err)
	}
	if settings != nil {
		log.Info().Str("site", settings.SiteName).Msg("Found site settings")
		if logo, err := ResolveImage(settings.Logo, projectID, dataset); err == nil {
			jobs = append(jobs, downloadJob{url: logo.URL, dir: s.drawableDir(), base: "logo", fallbackExt: "png", priority: true})
		}
		if favicon, err := ResolveImage(settings.Favicon, projectID, dataset); err == nil {
			jobs = append(jobs, downloadJob{url: favicon.URL, dir: s.cfg.PublicDir, base: "favicon", fallbackExt: "png", priority: true})
		}
	}

	var docs []entities.MediaDocument
	if err := s.client.Fetch(ctx, mediaDocumentsQuery, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}
	targets := DiscoverImages(docs, projectID, dataset)
	log.Info().Int("documents", len(docs)).Int("images", len(targets)).Msg("Collected unique images")

	for _, target := range targets {
		jobs = append(jobs, downloadJob{url: target.URL, dir: s.imagesDir(), base: target.AssetID, fallbackExt: "webp"})
	}
	return jobs, nil
}

// publish copies a freshly mirrored file to the publisher. Failures are logged only:
// the local copy is what the site build reads.
func (s *mirrorService) publish(ctx context.Context, path string) {
	if s.publisher == nil {
		return
	}
	rel, err := filepath.Rel(s.cfg.PublicDir, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Cannot publish asset")
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Cannot publish asset")
		return
	}
	location, err := s.publisher.Upload(ctx, filepath.ToSlash(rel), data, mimetype.Detect(data).String())
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Publish failed")
		return
	}
	log.Info().Str("location", location).Msg("Published")
}
