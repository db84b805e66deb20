package lists

import (
	"context"
	"fmt"
	"os"

	"github.com/maksimkurb/ioc-diff/src/internal/config"
	"github.com/maksimkurb/ioc-diff/src/internal/errors"
	"github.com/maksimkurb/ioc-diff/src/internal/log"
)

// Loader reads configured indicator lists from their source.
type Loader struct {
	cfg        *config.Config
	downloader *Downloader
}

// NewLoader creates a Loader. A nil downloader selects the default one.
func NewLoader(cfg *config.Config, downloader *Downloader) *Loader {
	if downloader == nil {
		downloader = NewDownloader(nil)
	}
	return &Loader{cfg: cfg, downloader: downloader}
}

// Load returns the indicators of a configured list.
func (l *Loader) Load(ctx context.Context, list *config.ListSource) ([]string, error) {
	var (
		indicators []string
		err        error
	)

	switch list.Type() {
	case "url":
		indicators, err = l.downloader.Download(ctx, list.URL)
	case "file":
		indicators, err = LoadFile(list.GetAbsolutePath(l.cfg))
	default:
		indicators = normalizeHosts(list.Hosts)
	}
	if err != nil {
		return nil, errors.NewListError(fmt.Sprintf("failed to load list %q", list.ListName), err)
	}

	log.Debugf("List %s: %d indicators", list, len(indicators))
	return indicators, nil
}

// LoadByName loads a configured list by name.
func (l *Loader) LoadByName(ctx context.Context, name string) ([]string, error) {
	list := l.cfg.GetListByName(name)
	if list == nil {
		return nil, errors.NewListError(fmt.Sprintf("list %q not found", name), nil)
	}
	return l.Load(ctx, list)
}

// LoadFile reads a local list file.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file '%s': %v", path, err)
	}
	defer f.Close()

	indicators, checksum, err := readIndicatorsWithChecksum(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file '%s': %v", path, err)
	}
	log.Debugf("Read %d indicators from %s (md5 %s)", len(indicators), path, checksum)
	return indicators, nil
}
