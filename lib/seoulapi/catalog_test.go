package seoulapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsKnownService(t *testing.T) {
	require.True(t, IsKnownService("ListAirQualityByDistrictService"))
	require.True(t, IsKnownService("listairqualitybydistrictservice"))
	require.True(t, IsKnownService(" CardSubwayStatsNew "))
	require.False(t, IsKnownService("NoSuchDataset"))
}

func TestSuggestService(t *testing.T) {
	require.Equal(
		t,
		"ListAirQualityByDistrictService",
		SuggestService("ListAirQualityByDistrict"),
	)
	require.Equal(t, "CardSubwayStatsNew", SuggestService("CardSubwayStats"))
	require.Equal(t, "", SuggestService("zzzzzzzz"))
}
