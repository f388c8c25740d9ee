// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUserInterface(t *testing.T) {
	var _ User = UnauthenticatedUser{}
	var _ User = TokenUser{}
}

func TestUsers(t *testing.T) {
	tests := map[string]struct {
		user     User
		wantAuth bool
		wantName string
	}{
		"unauthenticated zero value": {
			user:     UnauthenticatedUser{},
			wantAuth: false,
			wantName: "",
		},
		"token user": {
			user:     TokenUser{Subject: "alice"},
			wantAuth: true,
			wantName: "alice",
		},
		"token user without subject": {
			user:     TokenUser{},
			wantAuth: true,
			wantName: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.wantAuth, tt.user.IsAuthenticated()); diff != "" {
				t.Errorf("IsAuthenticated() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantName, tt.user.UserName()); diff != "" {
				t.Errorf("UserName() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUserFrom(t *testing.T) {
	tests := map[string]struct {
		ctx  context.Context
		want User
	}{
		"empty context": {
			ctx:  context.Background(),
			want: UnauthenticatedUser{},
		},
		"nil user": {
			ctx:  WithUser(context.Background(), nil),
			want: UnauthenticatedUser{},
		},
		"token user": {
			ctx:  WithUser(context.Background(), TokenUser{Subject: "bob"}),
			want: TokenUser{Subject: "bob"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, UserFrom(tt.ctx)); diff != "" {
				t.Errorf("UserFrom() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ExampleUserFrom demonstrates reading the caller from a request context.
func ExampleUserFrom() {
	ctx := WithUser(context.Background(), TokenUser{Subject: "alice"})

	user := UserFrom(ctx)
	if user.IsAuthenticated() {
		_ = user.UserName()
	}

	// Output:
}
