package seoulapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRequestUrl(t *testing.T) {
	link, err := BuildRequestUrl(DefaultBaseUrl, "samplekey", RequestParams{
		Service:    "ListAirQualityByDistrictService",
		Format:     FormatJSON,
		StartIndex: 1,
		EndIndex:   5,
	})
	require.NoError(t, err)
	require.Equal(
		t,
		"http://openAPI.seoul.go.kr:8088/samplekey/json/ListAirQualityByDistrictService/1/5/",
		link,
	)
}

func TestBuildRequestUrlEscaping(t *testing.T) {
	link, err := BuildRequestUrl(DefaultBaseUrl, "key with/slash", RequestParams{
		Service:    "Name With Space",
		Format:     FormatJSON,
		StartIndex: 10,
		EndIndex:   20,
	})
	require.NoError(t, err)
	require.Equal(
		t,
		"http://openAPI.seoul.go.kr:8088/key%20with%2Fslash/json/Name%20With%20Space/10/20/",
		link,
	)
}

func TestBuildRequestUrlValidation(t *testing.T) {
	valid := RequestParams{
		Service:    DefaultService,
		Format:     FormatJSON,
		StartIndex: 1,
		EndIndex:   5,
	}

	cases := []struct {
		name   string
		mutate func(p *RequestParams) (apiKey string)
	}{
		{
			name: "empty api key",
			mutate: func(p *RequestParams) string {
				return ""
			},
		},
		{
			name: "empty service",
			mutate: func(p *RequestParams) string {
				p.Service = ""
				return "key"
			},
		},
		{
			name: "zero start index",
			mutate: func(p *RequestParams) string {
				p.StartIndex = 0
				return "key"
			},
		},
		{
			name: "end before start",
			mutate: func(p *RequestParams) string {
				p.StartIndex = 10
				p.EndIndex = 9
				return "key"
			},
		},
		{
			name: "xml format",
			mutate: func(p *RequestParams) string {
				p.Format = FormatXML
				return "key"
			},
		},
		{
			name: "unknown format",
			mutate: func(p *RequestParams) string {
				p.Format = "yaml"
				return "key"
			},
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			params := valid
			apiKey := test.mutate(&params)
			_, err := BuildRequestUrl(DefaultBaseUrl, apiKey, params)
			require.ErrorIs(t, err, ErrBuild)
		})
	}
}
