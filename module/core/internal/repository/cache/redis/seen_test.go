package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkSeen_New(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectSetNX("apartments:seen:123", 1, 24*time.Hour).SetVal(true)

	c := NewSeenCache(db, 24*time.Hour)
	fresh, err := c.MarkSeen(context.Background(), "123")
	require.NoError(t, err)
	assert.True(t, fresh)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSeen_Existing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectSetNX("apartments:seen:123", 1, time.Hour).SetVal(false)

	c := NewSeenCache(db, time.Hour)
	fresh, err := c.MarkSeen(context.Background(), "123")
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestMarkSeen_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectSetNX("apartments:seen:123", 1, time.Hour).SetErr(errors.New("connection refused"))

	c := NewSeenCache(db, time.Hour)
	_, err := c.MarkSeen(context.Background(), "123")
	assert.Error(t, err)
}

func TestForget(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectDel("apartments:seen:123").SetVal(1)

	c := NewSeenCache(db, time.Hour)
	require.NoError(t, c.Forget(context.Background(), "123"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestForget_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectDel("apartments:seen:123").SetErr(errors.New("connection refused"))

	c := NewSeenCache(db, time.Hour)
	assert.Error(t, c.Forget(context.Background(), "123"))
}
