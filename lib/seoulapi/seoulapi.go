package seoulapi

import (
	"time"

	"seoulopendata/lib/restyutil"
	"seoulopendata/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("seoulapi")

type ClientOptions struct {
	// BaseUrl defaults to DefaultBaseUrl when empty.
	BaseUrl string
	// Timeout bounds the single blocking GET, defaults to 30s.
	Timeout time.Duration
}

// Client talks to the Seoul open data API. One client may serve any
// number of sequential fetches; it holds no per-request state.
type Client struct {
	http    *resty.Client
	baseUrl string
}

func NewClient(options ClientOptions) *Client {
	if options.BaseUrl == "" {
		options.BaseUrl = DefaultBaseUrl
	}
	if options.Timeout == 0 {
		options.Timeout = time.Second * 30
	}

	client := resty.New()
	client.SetTimeout(options.Timeout)

	telemetry.InstrumentResty(client, "seoulapi/http")

	return &Client{http: client, baseUrl: options.BaseUrl}
}

func (c *Client) SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.http, output)
}
