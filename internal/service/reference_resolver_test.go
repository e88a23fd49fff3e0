package service_test

import (
	"context"
	"testing"

	"taskflow/internal/apperrors"
	"taskflow/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestReferenceResolver_ResolveStatus(t *testing.T) {
	env := newTestEnv(t)
	resolver := service.NewReferenceResolver(env.statuses, env.labels, env.users)

	status, err := resolver.ResolveStatus(context.Background(), "draft")
	assert.NoError(t, err)
	assert.Equal(t, "Draft", status.Name)

	_, err = resolver.ResolveStatus(context.Background(), "nope")
	var refErr *apperrors.ReferenceNotFoundError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "status", refErr.Kind)
	assert.Equal(t, "nope", refErr.Key)
}

func TestReferenceResolver_ResolveLabels_Empty(t *testing.T) {
	env := newTestEnv(t)
	resolver := service.NewReferenceResolver(env.statuses, env.labels, env.users)

	labels, err := resolver.ResolveLabels(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, labels)

	labels, err = resolver.ResolveLabels(context.Background(), []uint{})
	assert.NoError(t, err)
	assert.Empty(t, labels)
}

func TestReferenceResolver_ResolveLabels_FailsFast(t *testing.T) {
	env := newTestEnv(t)
	resolver := service.NewReferenceResolver(env.statuses, env.labels, env.users)

	_, err := resolver.ResolveLabels(context.Background(), []uint{1, 42, 2})

	var refErr *apperrors.ReferenceNotFoundError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "label", refErr.Kind)
	assert.Equal(t, "42", refErr.Key)
}

func TestReferenceResolver_ResolveUser(t *testing.T) {
	env := newTestEnv(t)
	resolver := service.NewReferenceResolver(env.statuses, env.labels, env.users)

	user, err := resolver.ResolveUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = resolver.ResolveUser(context.Background(), 99)
	var refErr *apperrors.ReferenceNotFoundError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "user", refErr.Kind)
	assert.Equal(t, "99", refErr.Key)
}
