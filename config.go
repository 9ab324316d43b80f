package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTLHours int

	CookieName     string
	CookieSecure   bool
	CookieDomain   string
	CookieSameSite http.SameSite

	CORSOrigin string
	Port       string

	// PublicSessions opens GET /api/v1/sessions to unauthenticated callers.
	// The published listing is public content, but the legacy wiring guarded
	// it, so the guard stays the default.
	PublicSessions bool
}

func loadConfig() Config {
	return Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTLHours:    getenvInt("JWT_TTL_HOURS", 24),
		CookieName:     getenv("COOKIE_NAME", "token"),
		CookieSecure:   os.Getenv("COOKIE_SECURE") == "true",
		CookieDomain:   os.Getenv("COOKIE_DOMAIN"),
		CookieSameSite: sameSiteFromEnv(),
		CORSOrigin:     getenv("CORS_ORIGIN", "http://localhost:5173"),
		Port:           getenv("PORT", "8080"),
		PublicSessions: os.Getenv("SESSIONS_PUBLIC") == "true",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// let env control SameSite: "none" | "lax" | "strict"  (default: lax)
func sameSiteFromEnv() http.SameSite {
	switch strings.ToLower(os.Getenv("COOKIE_SAMESITE")) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}
