package lists

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/maksimkurb/ioc-diff/src/internal/log"
)

const defaultDownloadTimeout = 60 * time.Second

// Downloader fetches indicator lists over HTTP.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a Downloader. A nil client selects one with a 60s timeout.
func NewDownloader(client *http.Client) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: defaultDownloadTimeout}
	}
	return &Downloader{client: client}
}

// Download fetches url and parses the body as one indicator per line.
func (d *Downloader) Download(ctx context.Context, url string) ([]string, error) {
	log.Infof("Downloading list from URL: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download list: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download list: %s", resp.Status)
	}

	indicators, checksum, err := readIndicatorsWithChecksum(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	log.Debugf("Downloaded %d indicators from %s (md5 %s)", len(indicators), url, checksum)
	return indicators, nil
}
