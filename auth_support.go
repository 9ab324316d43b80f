package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

/* ===================== Cookies ====================== */

func (a *api) setAuthCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	c := &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   a.cfg.CookieDomain, // may be empty for host-only
		HttpOnly: true,
		SameSite: a.cfg.CookieSameSite,
		Secure:   a.cfg.CookieSecure,
		Expires:  time.Now().Add(ttl),
	}
	http.SetCookie(w, c)
}

func (a *api) clearAuthCookie(w http.ResponseWriter) {
	c := &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   a.cfg.CookieDomain,
		HttpOnly: true,
		SameSite: a.cfg.CookieSameSite,
		Secure:   a.cfg.CookieSecure,
		MaxAge:   -1,
	}
	http.SetCookie(w, c)
}

/* ===================== Request identity ====================== */

type ctxKey string

const userCtxKey ctxKey = "wellness_user"

func withUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}

// currentUser returns the identity requireAuth resolved for this request,
// or nil on unguarded routes.
func currentUser(ctx context.Context) *User {
	if u, ok := ctx.Value(userCtxKey).(*User); ok {
		return u
	}
	return nil
}

// tokenFromRequest extracts the bearer token from the auth cookie, falling
// back to the Authorization header. The cookie wins when both are present.
func tokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// requireAuth verifies the token, resolves the user and injects it into the
// request context. Handlers behind it read the identity with currentUser.
func (a *api) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := tokenFromRequest(r, a.cfg.CookieName)
		if raw == "" {
			errorJSON(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := parseToken([]byte(a.cfg.JWTSecret), raw)
		if errors.Is(err, ErrTokenExpired) {
			errorJSON(w, http.StatusUnauthorized, "Token expired.")
			return
		} else if err != nil {
			errorJSON(w, http.StatusUnauthorized, "Invalid token.")
			return
		}

		u, err := a.users.UserByID(r.Context(), claims.UserID)
		if errors.Is(err, ErrNotFound) {
			errorJSON(w, http.StatusUnauthorized, "Invalid token. User not found.")
			return
		} else if err != nil {
			errorJSON(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
	})
}
