package seoulapi

import (
	"fmt"
	"net/url"
	"strings"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

const (
	DefaultBaseUrl    = "http://openAPI.seoul.go.kr:8088"
	DefaultService    = "ListAirQualityByDistrictService"
	DefaultStartIndex = 1
	DefaultEndIndex   = 5
)

// RequestParams selects one inclusive slice of one dataset service.
// Indices follow the API convention: 1-based, both ends included.
type RequestParams struct {
	Service    string
	Format     Format
	StartIndex int
	EndIndex   int
}

func (p RequestParams) validate() error {
	if p.Service == "" {
		return fmt.Errorf("%w: service name is empty", ErrBuild)
	}
	if p.StartIndex < 1 {
		return fmt.Errorf("%w: start index %d is not positive", ErrBuild, p.StartIndex)
	}
	if p.EndIndex < p.StartIndex {
		return fmt.Errorf(
			"%w: end index %d precedes start index %d",
			ErrBuild, p.EndIndex, p.StartIndex,
		)
	}
	switch p.Format {
	case FormatJSON:
	case FormatXML:
		// the API serves xml but this collector can only parse json
		return fmt.Errorf("%w: xml responses are not supported", ErrBuild)
	default:
		return fmt.Errorf("%w: unknown response format %q", ErrBuild, p.Format)
	}
	return nil
}

// BuildRequestUrl composes the open API path:
//
//	{base}/{apiKey}/{format}/{service}/{start}/{end}/
//
// It performs no network I/O and no range checks beyond what the
// parameters themselves require.
func BuildRequestUrl(baseUrl, apiKey string, p RequestParams) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%w: api key is empty", ErrBuild)
	}
	if err := p.validate(); err != nil {
		return "", err
	}

	base, err := url.Parse(baseUrl)
	if err != nil {
		return "", fmt.Errorf("%w: bad base url %q: %s", ErrBuild, baseUrl, err)
	}

	return fmt.Sprintf(
		"%s/%s/%s/%s/%d/%d/",
		strings.TrimSuffix(base.String(), "/"),
		url.PathEscape(apiKey),
		url.PathEscape(string(p.Format)),
		url.PathEscape(p.Service),
		p.StartIndex,
		p.EndIndex,
	), nil
}
