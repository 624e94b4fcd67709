package app

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	// Clear anything the surrounding environment may carry
	for _, k := range []string{"HTTP_ADDR", "WS_SEND_BUFFER", "HISTORY_LIMIT", "CORS_ALLOW"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.SendBuffer != 256 {
		t.Errorf("SendBuffer = %d", cfg.SendBuffer)
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d", cfg.HistoryLimit)
	}
	if len(cfg.CORSAllow) == 0 {
		t.Error("CORSAllow empty")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("WS_SEND_BUFFER", "32")
	t.Setenv("CORS_ALLOW", "https://a.example, https://b.example")

	cfg := LoadConfig()

	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.SendBuffer != 32 {
		t.Errorf("SendBuffer = %d", cfg.SendBuffer)
	}
	if len(cfg.CORSAllow) != 2 || cfg.CORSAllow[1] != "https://b.example" {
		t.Errorf("CORSAllow = %v", cfg.CORSAllow)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("PG_MAX_CONN", "not-a-number")
	cfg := LoadConfig()
	if cfg.PGMaxConn != 10 {
		t.Errorf("PGMaxConn = %d, want default 10", cfg.PGMaxConn)
	}
}
