package seoulapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"seoulopendata/lib/datatable"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// the API reports success through this RESULT code even when the HTTP
// status already said 200
const successCode = "INFO-000"

type resultPayload struct {
	Code    string `json:"CODE"`
	Message string `json:"MESSAGE"`
}

type servicePayload struct {
	TotalCount int             `json:"list_total_count"`
	Result     resultPayload   `json:"RESULT"`
	Row        json.RawMessage `json:"row"`
}

// FetchTable performs one GET for the requested row range and
// materializes the response rows as a table. No retries, no caching,
// no pagination: one call covers exactly the range in params.
func (c *Client) FetchTable(ctx context.Context, apiKey string, params RequestParams) (*datatable.Table, error) {
	ctx, span := tracer.Start(ctx, "FetchTable")
	defer span.End()
	span.SetAttributes(
		attribute.String("service", params.Service),
		attribute.Int("start_index", params.StartIndex),
		attribute.Int("end_index", params.EndIndex),
	)

	link, err := BuildRequestUrl(c.baseUrl, apiKey, params)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	res, err := c.http.R().SetContext(ctx).Get(link)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err)
	}

	table, err := parseResponse(params.Service, res.StatusCode(), res.Body())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	slog.DebugContext(
		ctx, "fetched dataset rows",
		"service", params.Service,
		"rows", table.RowCount(),
		"columns", len(table.Columns),
	)
	return table, nil
}

func parseResponse(service string, status int, body []byte) (*datatable.Table, error) {
	success := status >= 200 && status <= 299

	var envelope map[string]json.RawMessage
	err := json.Unmarshal(body, &envelope)
	if err != nil {
		if !success {
			return nil, fmt.Errorf("%w: http status %d", ErrService, status)
		}
		return nil, fmt.Errorf("%w: body is not a json object: %s", ErrParse, err)
	}

	// a non-2xx status is a rejection no matter what the body claims,
	// though an embedded RESULT makes a better error than the bare code
	if !success {
		if result, ok := embeddedResult(service, envelope); ok {
			return nil, fmt.Errorf(
				"%w: http status %d: %s: %s",
				ErrService, status, result.Code, result.Message,
			)
		}
		return nil, fmt.Errorf("%w: http status %d", ErrService, status)
	}

	raw, ok := envelope[service]
	if !ok {
		// error payloads put RESULT at the top level instead of under
		// the service key
		if rawResult, ok := envelope["RESULT"]; ok {
			var result resultPayload
			if json.Unmarshal(rawResult, &result) == nil && result.Code != successCode {
				return nil, fmt.Errorf(
					"%w: %s: %s",
					ErrService, result.Code, result.Message,
				)
			}
		}
		return nil, fmt.Errorf(
			"%w: could not find the %q payload, check the service name or api key",
			ErrParse, service,
		)
	}

	var payload servicePayload
	err = json.Unmarshal(raw, &payload)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed service payload: %s", ErrParse, err)
	}
	if payload.Result.Code != successCode {
		return nil, fmt.Errorf(
			"%w: %s: %s",
			ErrService, payload.Result.Code, payload.Result.Message,
		)
	}
	if payload.Row == nil {
		return nil, fmt.Errorf("%w: response does not include a 'row' field", ErrParse)
	}

	table, err := datatable.FromJSONRows(payload.Row)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return table, nil
}

func embeddedResult(service string, envelope map[string]json.RawMessage) (resultPayload, bool) {
	if raw, ok := envelope["RESULT"]; ok {
		var result resultPayload
		if json.Unmarshal(raw, &result) == nil && result.Code != "" {
			return result, true
		}
	}
	if raw, ok := envelope[service]; ok {
		var payload servicePayload
		if json.Unmarshal(raw, &payload) == nil && payload.Result.Code != "" {
			return payload.Result, true
		}
	}
	return resultPayload{}, false
}
