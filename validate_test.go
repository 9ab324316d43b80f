package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name string
		in   registerReq
		want string
	}{
		{
			name: "valid",
			in:   registerReq{Name: "Alice", Email: "alice@example.com", Password: "secret1"},
			want: "",
		},
		{
			name: "missing fields",
			in:   registerReq{Name: "Alice", Email: "alice@example.com"},
			want: "All fields are required",
		},
		{
			name: "bad email",
			in:   registerReq{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			want: "Please enter a valid email address",
		},
		{
			name: "email without domain dot",
			in:   registerReq{Name: "Alice", Email: "alice@localhost", Password: "secret1"},
			want: "Please enter a valid email address",
		},
		{
			name: "special chars in name",
			in:   registerReq{Name: "Al!ce", Email: "alice@example.com", Password: "secret1"},
			want: "Name should not contain special characters",
		},
		{
			name: "special chars in password",
			in:   registerReq{Name: "Alice", Email: "alice@example.com", Password: "sec*ret1"},
			want: "Password should not contain special characters",
		},
		{
			name: "name too short after trim",
			in:   registerReq{Name: " A ", Email: "alice@example.com", Password: "secret1"},
			want: "Name must be at least 2 characters long",
		},
		{
			name: "password too short",
			in:   registerReq{Name: "Alice", Email: "alice@example.com", Password: "abc12"},
			want: "Password must be at least 6 characters long",
		},
		{
			name: "password too long",
			in:   registerReq{Name: "Alice", Email: "alice@example.com", Password: strings.Repeat("a", 51)},
			want: "Password must not exceed 50 characters",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validateRegistration(tc.in))
		})
	}
}
