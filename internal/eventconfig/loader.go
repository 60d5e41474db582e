// Package eventconfig loads the immutable event definition the pricing
// engine computes against. The source is env-driven: a registry URL when
// one is configured, a local JSON file otherwise. The loaded config is
// passed explicitly into every computation — there is no ambient singleton.
package eventconfig

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"registration-engine/internal/model"
)

const (
	envURL  = "EVENT_CONFIG_URL"
	envPath = "EVENT_CONFIG_PATH"

	defaultPath = "testdata/event.json"
)

var client = &http.Client{
	Timeout: 2 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Load resolves the event definition from the environment: EVENT_CONFIG_URL
// wins when set, then EVENT_CONFIG_PATH, then the bundled sample.
func Load() (*model.EventConfig, error) {
	if url := os.Getenv(envURL); url != "" {
		return FromURL(url)
	}
	path := os.Getenv(envPath)
	if path == "" {
		path = defaultPath
	}
	return FromFile(path)
}

// FromFile reads and validates an event definition from a JSON file.
func FromFile(path string) (*model.EventConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event config: %w", err)
	}
	return parse(data)
}

// FromURL fetches and validates an event definition over HTTP.
func FromURL(url string) (*model.EventConfig, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch event config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch event config: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch event config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*model.EventConfig, error) {
	var cfg model.EventConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse event config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid event config: %w", err)
	}
	return &cfg, nil
}

// validate checks only what the engine cannot degrade around. Referential
// integrity between participants and config ids is the caller's problem and
// resolves to zero values at quote time.
func validate(cfg *model.EventConfig) error {
	switch cfg.FormType {
	case model.FormLodgingOnly, model.FormEventOnly, model.FormLodgingAndEvent:
	default:
		return fmt.Errorf("unknown form_type %q", cfg.FormType)
	}
	if cfg.FormType != model.FormEventOnly && len(cfg.StayPeriods) == 0 {
		return fmt.Errorf("form_type %q requires at least one stay period", cfg.FormType)
	}
	hasNestedOptions := false
	for _, p := range cfg.StayPeriods {
		if len(p.EventOptions) > 0 {
			hasNestedOptions = true
			break
		}
	}
	if cfg.FormType != model.FormLodgingOnly && len(cfg.EventOptions) == 0 && !hasNestedOptions {
		return fmt.Errorf("form_type %q requires event options", cfg.FormType)
	}
	return nil
}
