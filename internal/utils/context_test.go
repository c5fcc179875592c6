// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerIDCtxKey_String(t *testing.T) {
	assert.Equal(t, "ownerID", OwnerIDCtxKey.String())
}

func TestGetOwnerIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "present", ctx: WithOwnerID(context.Background(), "u1"), want: "u1", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: context.WithValue(context.Background(), OwnerIDCtxKey, "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), OwnerIDCtxKey, int64(42))},
		{name: "plain string key", ctx: context.WithValue(context.Background(), "ownerID", "u1")}, //nolint:staticcheck
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetOwnerIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
