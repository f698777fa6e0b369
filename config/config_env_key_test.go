package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"baseUrl":          "",
			"resolverPageSize": 250,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_BASEURL", want: "store.baseUrl"},
		{envKey: "STORE_RESOLVERPAGESIZE", want: "store.resolverPageSize"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Store.ResolverPageSize != defaultResolverPageSize {
		t.Fatalf("ResolverPageSize = %d, want %d", cfg.Store.ResolverPageSize, defaultResolverPageSize)
	}
	if cfg.Store.ResolverMaxPages != defaultResolverMaxPages {
		t.Fatalf("ResolverMaxPages = %d, want %d", cfg.Store.ResolverMaxPages, defaultResolverMaxPages)
	}
	if cfg.Sync.SettleDelay != defaultSettleDelay {
		t.Fatalf("SettleDelay = %s, want %s", cfg.Sync.SettleDelay, defaultSettleDelay)
	}
	if cfg.Directory.CacheTTL != defaultDirectoryCacheTTL {
		t.Fatalf("CacheTTL = %s, want %s", cfg.Directory.CacheTTL, defaultDirectoryCacheTTL)
	}
	if cfg.Dispatch.Interval != defaultDispatchInterval {
		t.Fatalf("Dispatch.Interval = %s, want %s", cfg.Dispatch.Interval, defaultDispatchInterval)
	}
}
