package model

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Options are run-wide switches that travel with every case, including to
// worker processes.
type Options struct {
	Worker               bool   `json:"worker" msgpack:"worker"`
	Debug                bool   `json:"debug" msgpack:"debug"`
	Compatibility        bool   `json:"compatibility" msgpack:"compatibility"`
	UnrollConstEvalLoops bool   `json:"unrollConstEvalLoops" msgpack:"unrollConstEvalLoops"`
	PowerPreference      string `json:"powerPreference,omitempty" msgpack:"powerPreference,omitempty"`
}

// DefaultOptions mirrors the settings used when nothing is specified.
func DefaultOptions() Options {
	return Options{Debug: true}
}

// WorkerRequest asks a worker process to run one case.
type WorkerRequest struct {
	Query        string             `msgpack:"query"`
	Expectations []QueryExpectation `msgpack:"expectations"`
	Options      Options            `msgpack:"ctsOptions"`
}

// WorkerResponse carries the result of a WorkerRequest back.
type WorkerResponse struct {
	Query  string `msgpack:"query"`
	Result Result `msgpack:"result"`
	Error  string `msgpack:"error,omitempty"`
}

// ParseSearchParamLike splits "suite:a,*&debug=1&power_preference=low-power"
// or "?q=...&q=..." into its queries and options. Path-like queries ending
// in .spec.go are converted to file queries.
func ParseSearchParamLike(s string) ([]string, Options, error) {
	search := s
	if !strings.HasPrefix(s, "q=") && !strings.Contains(s, "&q=") && !strings.HasPrefix(s, "?") {
		search = "q=" + s
	}

	values, err := parseSearch(strings.TrimPrefix(search, "?"))
	if err != nil {
		return nil, Options{}, err
	}

	queries := values["q"]
	for i, q := range queries {
		queries[i] = ConvertPathLikeToQuery(q)
	}

	opts := Options{
		Worker:               optionEnabled(values, "worker"),
		Debug:                optionEnabled(values, "debug"),
		Compatibility:        optionEnabled(values, "compatibility"),
		UnrollConstEvalLoops: optionEnabled(values, "unroll_const_eval_loops"),
		PowerPreference:      values.Get("power_preference"),
	}

	return queries, opts, nil
}

// parseSearch splits on "&" only: url.ParseQuery rejects the ";" that
// separates query params.
func parseSearch(s string) (url.Values, error) {
	values := url.Values{}

	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, err
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, err
		}

		values.Add(key, value)
	}

	return values, nil
}

func optionEnabled(values url.Values, name string) bool {
	if !values.Has(name) {
		return false
	}

	return values.Get(name) != "0"
}

// specFileSuffix marks spec source files in a test content tree.
const specFileSuffix = ".spec.go"

// ConvertPathLikeToQuery turns "x/src/webgpu/a/b.spec.go" into
// "webgpu:a,b,*". Anything else is returned unchanged.
func ConvertPathLikeToQuery(s string) string {
	if !strings.HasSuffix(s, specFileSuffix) || !strings.ContainsAny(s, `/\`) {
		return s
	}

	trimmed := strings.TrimSuffix(filepath.ToSlash(strings.ReplaceAll(s, `\`, "/")), specFileSuffix)
	parts := strings.Split(trimmed, "/")

	last := -1
	for i, p := range parts {
		if p == "src" || p == "suites" {
			last = i
		}
	}

	parts = parts[last+1:]
	if len(parts) < 2 {
		return s
	}

	return parts[0] + ":" + strings.Join(parts[1:], ",") + ",*"
}
