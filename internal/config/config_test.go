package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PG_MAX_CONNS", "PG_MIN_CONNS", "RATE_LIMIT_PER_MINUTE", "BCRYPT_COST", "RESPOND_REQUIRE_CAMPAIGN_OWNER"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.PostgresMaxConns != 20 || cfg.PostgresMinConns != 2 {
		t.Errorf("pool defaults = %d/%d, want 20/2", cfg.PostgresMaxConns, cfg.PostgresMinConns)
	}
	if cfg.RateLimitPerMinute != 100 {
		t.Errorf("rate limit default = %d, want 100", cfg.RateLimitPerMinute)
	}
	if cfg.RespondRequireCampaignOwner {
		t.Error("strict respond policy must be off by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PG_MAX_CONNS", "50")
	t.Setenv("PG_MIN_CONNS", "5")
	t.Setenv("RESPOND_REQUIRE_CAMPAIGN_OWNER", "true")

	cfg := Load()
	if cfg.PostgresMaxConns != 50 || cfg.PostgresMinConns != 5 {
		t.Errorf("pool sizes = %d/%d, want 50/5", cfg.PostgresMaxConns, cfg.PostgresMinConns)
	}
	if !cfg.RespondRequireCampaignOwner {
		t.Error("strict respond policy should follow the env toggle")
	}
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("PG_MAX_CONNS", "lots")
	cfg := Load()
	if cfg.PostgresMaxConns != 20 {
		t.Errorf("malformed PG_MAX_CONNS should fall back to 20, got %d", cfg.PostgresMaxConns)
	}
}
