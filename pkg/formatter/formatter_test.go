package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1250:     "1,250",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		require.Equal(t, want, FormatNumber(in), "input %d", in)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "now", TimeAgo(now, now.Add(-59*time.Minute)))
	require.Equal(t, "1h", TimeAgo(now, now.Add(-time.Hour)))
	require.Equal(t, "23h", TimeAgo(now, now.Add(-23*time.Hour-59*time.Minute)))
	require.Equal(t, "1d", TimeAgo(now, now.Add(-24*time.Hour)))
	require.Equal(t, "3d", TimeAgo(now, now.Add(-80*time.Hour)))
}

func TestMessageTime(t *testing.T) {
	require.Equal(t, "3:04 PM", MessageTime(time.Date(2024, 5, 10, 15, 4, 0, 0, time.UTC)))
	require.Equal(t, "9:30 AM", MessageTime(time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)))
}

func TestLikes(t *testing.T) {
	require.Equal(t, "1,204 likes", Likes(1204))
}
