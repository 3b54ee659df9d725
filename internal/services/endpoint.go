package services

import (
	"net/url"
	"strings"
)

// EndpointParams are the values substituted into an endpoint template
type EndpointParams struct {
	Model    string
	Key      string
	Project  string
	Location string
}

// ExpandEndpoint substitutes {model}, {key}, {project} and {location} in template.
// Path values are path-escaped, the key is query-escaped.
func ExpandEndpoint(template string, params EndpointParams) string {
	replacer := strings.NewReplacer(
		"{model}", url.PathEscape(params.Model),
		"{key}", url.QueryEscape(params.Key),
		"{project}", url.PathEscape(params.Project),
		"{location}", url.PathEscape(params.Location),
	)
	return replacer.Replace(template)
}
