// Package icons resolves role icon images. Icons are looked up under
// the configured icon directory first, trying the same candidate names
// the asset packs use; on a miss the role's image URL is downloaded.
package icons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/clocktower-tools/scriptgen/botc"
)

// ErrNoIcon is returned when a role has no local icon and no image URL
var ErrNoIcon = errors.New("no icon available")

// Fetcher resolves and downloads role icons
type Fetcher struct {
	dir     string
	client  *http.Client
	clock   quartz.Clock
	timeout time.Duration
	workers int
	logger  *log.Logger
}

// NewFetcher creates a fetcher storing icons under dir. timeout bounds
// each download; workers bounds download concurrency in FetchAll.
func NewFetcher(dir string, timeout time.Duration, workers int, logger *log.Logger, clock quartz.Clock) *Fetcher {
	if workers < 1 {
		workers = 1
	}
	return &Fetcher{
		dir:     dir,
		client:  &http.Client{},
		clock:   clock,
		timeout: timeout,
		workers: workers,
		logger:  logger.WithPrefix("icons"),
	}
}

// CandidatePaths returns the local paths probed for a role id, in
// probe order. Locale-prefixed ids (ko_KR_imp) also probe their bare
// suffix forms.
func (f *Fetcher) CandidatePaths(id string) []string {
	paths := []string{
		filepath.Join(f.dir, "Icon_"+id+".png"),
	}
	parts := strings.Split(id, "_")
	if len(parts) > 2 {
		paths = append(paths, filepath.Join(f.dir, "Icon_"+strings.Join(parts[2:], "_")+".png"))
	}
	if len(parts) > 1 {
		paths = append(paths, filepath.Join(f.dir, "Icon_"+parts[len(parts)-1]+".png"))
	}
	return paths
}

// Resolve returns the local icon path for a role, downloading it from
// the role's image URL when no candidate path exists. The downloaded
// file is stored under the normalized role id.
func (f *Fetcher) Resolve(ctx context.Context, role botc.Role) (string, error) {
	for _, path := range f.CandidatePaths(role.ID) {
		if _, err := os.Stat(path); err == nil {
			f.logger.Debug("found local icon", "role", role.ID, "path", path)
			return path, nil
		}
	}

	if role.Image == "" {
		return "", fmt.Errorf("%s: %w", role.ID, ErrNoIcon)
	}
	return f.download(ctx, role)
}

func (f *Fetcher) download(ctx context.Context, role botc.Role) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Bound the download with the injected clock so tests can control
	// timeout behavior
	timer := f.clock.AfterFunc(f.timeout, cancel)
	defer timer.Stop()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, role.Image, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", role.ID, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download icon for %s: %w", role.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("icon download for %s returned %s", role.ID, resp.Status)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create icon dir: %w", err)
	}

	path := filepath.Join(f.dir, "Icon_"+botc.NormalizeRoleID(role.ID)+".png")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create icon file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write icon for %s: %w", role.ID, err)
	}

	f.logger.Info("downloaded icon", "role", role.ID, "path", path)
	return path, nil
}

// FetchAll resolves icons for every role in the script with bounded
// concurrency. Roles without any icon source are skipped with a
// warning; download failures abort the whole fetch.
func (f *Fetcher) FetchAll(ctx context.Context, script *botc.Script) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for _, role := range script.Roles {
		g.Go(func() error {
			_, err := f.Resolve(ctx, role)
			if errors.Is(err, ErrNoIcon) {
				f.logger.Warn("no icon source", "role", role.ID)
				return nil
			}
			return err
		})
	}

	return g.Wait()
}
