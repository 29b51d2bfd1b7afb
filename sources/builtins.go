package sources

import (
	"encoding/json"
	"net/url"
	"strings"
)

type BuiltInSourceType = string

const (
	FileSourceType BuiltInSourceType = "file"
	HTTPSourceType BuiltInSourceType = "http"
)

// RegisterBuiltins registers all built-in sources with the default registry,
// or only the specific ones if keys are provided
func RegisterBuiltins(types ...BuiltInSourceType) {
	RegisterBuiltinsTo(defaultRegistry, types...)
}

// RegisterBuiltinsTo is [RegisterBuiltins] for a specific registry
func RegisterBuiltinsTo(r *Registry, types ...BuiltInSourceType) {
	if len(types) == 0 {
		types = append(types, FileSourceType, HTTPSourceType)
	}

	for _, key := range types {
		switch key {
		case FileSourceType:
			RegisterFile(r)
		case HTTPSourceType:
			RegisterHTTP(r)
		}
	}
}

// Resolve turns a location given on the command line into a source spec:
// http(s) URLs become http sources, anything else a file path
func Resolve(location string) ([]byte, error) {
	location = strings.TrimSpace(location)
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return json.Marshal(struct {
			Type string `json:"type"`
			HTTPSpec
		}{HTTPSourceType, HTTPSpec{URL: location}})
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		FileSpec
	}{FileSourceType, FileSpec{Path: location}})
}
