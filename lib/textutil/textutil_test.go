package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeService(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"ListAirQualityByDistrictService", "listairqualitybydistrictservice"},
		{"  Card Subway\tStats New \n", "cardsubwaystatsnew"},
		{"", ""},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, NormalizeService(test.input))
	}
}
