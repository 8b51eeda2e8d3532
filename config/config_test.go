package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("server port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Plaid.Environment != "sandbox" {
		t.Errorf("plaid env = %q, want sandbox", cfg.Plaid.Environment)
	}
	if cfg.Policy.DailyLimit != 50 || cfg.Policy.WeeklyTarget != 250 || cfg.Policy.DownPaymentTarget != 20000 {
		t.Errorf("unexpected policy defaults: %+v", cfg.Policy)
	}
}

func TestLoadPolicyOverrides(t *testing.T) {
	t.Setenv("POLICY_DAILY_LIMIT", "75.5")
	t.Setenv("POLICY_WEEKLY_TARGET", "300")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Policy.DailyLimit != 75.5 {
		t.Errorf("daily limit = %v, want 75.5", cfg.Policy.DailyLimit)
	}
	if cfg.Policy.WeeklyTarget != 300 {
		t.Errorf("weekly target = %v, want 300", cfg.Policy.WeeklyTarget)
	}
}

func TestLoadRejectsNonPositivePolicy(t *testing.T) {
	t.Setenv("POLICY_WEEKLY_TARGET", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative weekly target")
	}
}

func TestLoadRejectsUnknownPlaidEnv(t *testing.T) {
	t.Setenv("PLAID_ENV", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown plaid environment")
	}
}
