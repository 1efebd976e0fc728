package dataset

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// LoadManifest reads a manifest from a local file or, for http(s) locations,
// fetches it over the network.
func LoadManifest(pathOrURL string) (*Manifest, error) {
	var (
		data []byte
		err  error
	)
	if isRemote(pathOrURL) {
		data, err = fetchManifest(pathOrURL)
	} else {
		data, err = os.ReadFile(pathOrURL)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read manifest: %w", err)
	}

	m := &Manifest{}
	if err := sonic.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("dataset: parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	log.Debug().Int("samples", len(m.Samples)).Strs("classes", m.ClassNames).Msg("manifest loaded")
	return m, nil
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func fetchManifest(url string) ([]byte, error) {
	client := resty.New().
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(15 * time.Second)

	resp, err := client.R().Get(url)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("manifest fetch failed")
		return nil, err
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("url", url).Msg("manifest fetch non-2xx")
		return nil, fmt.Errorf("manifest request returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
