package utils

import (
	"net/url"

	"golang.org/x/net/idna"
)

// CompleteURL resolves ref against base.
// The host of the result is converted to its ASCII (punycode) form.
// If base is empty, or if one of the URLs can't be parsed, ref is returned unchanged.
func CompleteURL(base, ref string) string {
	if ref == "" || base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	out := baseURL.ResolveReference(refURL)
	if out.Host != "" {
		host, err := idna.Lookup.ToASCII(out.Hostname())
		if err != nil {
			return ref
		}
		if port := out.Port(); port != "" {
			host += ":" + port
		}
		out.Host = host
	}
	return out.String()
}
