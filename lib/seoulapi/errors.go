package seoulapi

import "errors"

// One sentinel per pipeline failure class so callers (and tests) can
// tell which stage aborted the run without string matching.
var (
	// ErrBuild means the request parameters could not form a valid URL.
	ErrBuild = errors.New("invalid request parameters")
	// ErrNetwork means the HTTP request never produced a response.
	ErrNetwork = errors.New("request failed")
	// ErrService means the API rejected the call, either with a non-2xx
	// status or with an error RESULT embedded in a 200 body.
	ErrService = errors.New("api rejected request")
	// ErrParse means the response body did not have the expected shape.
	ErrParse = errors.New("unexpected api response")
)
