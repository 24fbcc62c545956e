package config

import (
	"testing"
	"time"
)

func TestLoadRequiresBaseURL(t *testing.T) {
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without api_base_url")
	}
}

func TestLoadAppliesDefaultsAndDerivedDurations(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("APITimeout = %v", cfg.APITimeout)
	}
	if cfg.PollInterval != 300*time.Second {
		t.Fatalf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.CrawlLanguage != "pt-BR" || cfg.CrawlRegion != "BR" {
		t.Fatalf("crawl locale = %q/%q", cfg.CrawlLanguage, cfg.CrawlRegion)
	}
	if cfg.StorageType != "bbolt" {
		t.Fatalf("StorageType = %q", cfg.StorageType)
	}
}

func TestLoadRejectsNonPositiveIntervals(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8000")
	t.Setenv("POLL_INTERVAL", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for poll_interval = 0")
	}
}
