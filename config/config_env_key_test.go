package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
		},
		"vnpay": map[string]any{
			"tmnCode":    "",
			"hashSecret": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "VNPAY_TMNCODE", want: "vnpay.tmnCode"},
		{envKey: "VNPAY_HASHSECRET", want: "vnpay.hashSecret"},
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

func TestUseMock(t *testing.T) {
	cfg := &Config{}
	if !cfg.UseMock() {
		t.Fatal("empty baseUrl should select mock mode")
	}

	cfg.API.BaseURL = "http://localhost:8080/api"
	if cfg.UseMock() {
		t.Fatal("configured baseUrl should select remote mode")
	}

	cfg.API.BaseURL = "   "
	if !cfg.UseMock() {
		t.Fatal("blank baseUrl should select mock mode")
	}
}
