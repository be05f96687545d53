package transform

import (
	"fmt"
	"strings"
)

// ComposeFetchURL builds the rendering service URL:
// <baseEndpoint>/fetch/<directivePath>/<sourceURL>.
//
// The source URL is embedded verbatim as the final path segment. A source
// carrying a query or fragment would make the grammar ambiguous, so it is
// rejected; blob store public URLs never contain either.
func ComposeFetchURL(baseEndpoint, directivePath, sourceURL string) (string, error) {
	if strings.ContainsAny(sourceURL, "?#") {
		return "", fmt.Errorf("source url %q contains a query or fragment", sourceURL)
	}
	return strings.TrimSuffix(baseEndpoint, "/") + "/fetch/" + directivePath + "/" + sourceURL, nil
}
