package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"cache": map[string]any{
			"userTtl": "900s",
		},
		"secretKey": map[string]any{
			"jwt": "",
		},
		"mail": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CACHE_USERTTL", want: "cache.userTtl"},
		{envKey: "SECRETKEY_JWT", want: "secretKey.jwt"},
		{envKey: "MAIL_BASEURL", want: "mail.baseUrl"},
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

func TestApplyAuthDefaults_FillsUnsetTTLs(t *testing.T) {
	cfg := &Config{}

	applyAuthDefaults(cfg)

	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("access ttl = %v, want %v", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("refresh ttl = %v, want %v", cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL)
	}
	if cfg.Cache.UserTTL != defaultUserCacheTTL {
		t.Fatalf("cache ttl = %v, want %v", cfg.Cache.UserTTL, defaultUserCacheTTL)
	}
}
