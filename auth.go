package main

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validation patterns (same rules the legacy backend enforced).
var (
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

/* ===================== DTOs ====================== */

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validateRegistration returns a per-field message, or "" when in is valid.
func validateRegistration(in registerReq) string {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "All fields are required"
	}
	if !emailRegex.MatchString(in.Email) {
		return "Please enter a valid email address"
	}
	if specialCharRegex.MatchString(in.Name) {
		return "Name should not contain special characters"
	}
	if specialCharRegex.MatchString(in.Password) {
		return "Password should not contain special characters"
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		return "Name must be at least 2 characters long"
	}
	if len(in.Password) < 6 {
		return "Password must be at least 6 characters long"
	}
	if len(in.Password) > 50 {
		return "Password must not exceed 50 characters"
	}
	return ""
}

/* ===================== Handlers ====================== */

func (a *api) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := validateRegistration(in); msg != "" {
		errorJSON(w, http.StatusBadRequest, msg)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	u := User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		PasswordHash: string(hash),
	}
	if err := a.users.CreateUser(r.Context(), &u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			errorJSON(w, http.StatusBadRequest, "User already exists")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, "User registered successfully", toUserDTO(u))
}

func (a *api) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.Email == "" || in.Password == "" {
		errorJSON(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := a.users.UserByEmail(r.Context(), strings.TrimSpace(strings.ToLower(in.Email)))
	if errors.Is(err, ErrNotFound) {
		errorJSON(w, http.StatusNotFound, "User does not exist")
		return
	} else if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// constant-time with respect to the submitted password
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		errorJSON(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	ttl := time.Duration(a.cfg.JWTTTLHours) * time.Hour
	tok, err := signToken([]byte(a.cfg.JWTSecret), u.ID, ttl)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	a.setAuthCookie(w, tok, ttl)

	respondJSON(w, http.StatusOK, "User logged in successfully", map[string]any{
		"user":  toUserDTO(*u),
		"token": tok,
	})
}

func (a *api) handleLogout(w http.ResponseWriter, r *http.Request) {
	a.clearAuthCookie(w)
	respondJSON(w, http.StatusOK, "User logged out successfully", nil)
}

func (a *api) handleMe(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if u == nil {
		errorJSON(w, http.StatusUnauthorized, "User not authenticated")
		return
	}
	respondJSON(w, http.StatusOK, "Current user fetched successfully", toUserDTO(*u))
}
