package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)

	c, err := Load()

	req.NoError(err)
	req.Equal("development", c.App.Env)
	req.Equal(5*time.Second, c.Player.Duration)
	req.Equal(50*time.Millisecond, c.Player.TickInterval)
	req.Equal(50.0, c.Player.SwipeThreshold)
	req.Equal("1", c.Feed.CurrentUserID)
	req.Equal(4, c.Composer.Workers)
}

func TestLoad_FromEnv(t *testing.T) {
	req := require.New(t)
	t.Setenv("STORY_DURATION", "3s")
	t.Setenv("STORY_TICK_INTERVAL", "100ms")
	t.Setenv("STORY_SWIPE_THRESHOLD", "80")
	t.Setenv("FEED_CURRENT_USER_ID", "42")

	c, err := Load()

	req.NoError(err)
	req.Equal(3*time.Second, c.Player.Duration)
	req.Equal(100*time.Millisecond, c.Player.TickInterval)
	req.Equal(80.0, c.Player.SwipeThreshold)
	req.Equal("42", c.Feed.CurrentUserID)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("STORY_DURATION", "soon")

	_, err := Load()

	require.Error(t, err)
}
