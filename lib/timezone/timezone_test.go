package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowIsKst(t *testing.T) {
	now := Now()
	require.Equal(t, "Asia/Seoul", now.Location().String())
}

func TestStamp(t *testing.T) {
	moment := time.Date(2026, time.August, 29, 6, 30, 0, 0, time.UTC)
	require.Equal(t, "2026-08-29 15:30 KST", Stamp(moment))
}
