package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET_KEY", "refresh-secret")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/credentials.json")
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.HTTPPort != "8080" {
			t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
		}
		if cfg.AdminEmail != "admin@mysterio.com" {
			t.Errorf("AdminEmail = %q", cfg.AdminEmail)
		}
	})

	t.Run("missing access secret rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_SECRET_KEY", "")

		if _, err := Load(); err == nil {
			t.Fatal("expected an error when JWT_SECRET_KEY is unset")
		}
	})

	t.Run("missing refresh secret rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_REFRESH_SECRET_KEY", "")

		if _, err := Load(); err == nil {
			t.Fatal("expected an error when JWT_REFRESH_SECRET_KEY is unset")
		}
	})
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminEmail: "admin@mysterio.com"}

	cases := []struct {
		email string
		want  bool
	}{
		{"admin@mysterio.com", true},
		{"ADMIN@Mysterio.COM", true},
		{" admin@mysterio.com ", true},
		{"player@example.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := cfg.IsAdmin(tc.email); got != tc.want {
			t.Errorf("IsAdmin(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
