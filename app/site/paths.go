package site

import (
	"net/url"
	"strings"
)

const DefaultRoot = "./"

// ResolveRoot normalizes a page-level site root value so it can be used as
// a plain string prefix for asset and data paths.
func ResolveRoot(value string) string {
	root := strings.TrimSpace(value)
	if root == "" {
		return DefaultRoot
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root
}

func IsExternalURL(s string) bool {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Host != ""
}

func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "data:")
}

// ResolveAsset resolves an asset path against the site root. Empty paths
// resolve to the placeholder, external URLs and data URIs are returned
// verbatim, and a single leading "/" is dropped before prefixing.
func ResolveAsset(root, path, placeholder string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		if placeholder == "" {
			return ""
		}
		return ResolveAsset(root, placeholder, "")
	}

	if IsExternalURL(path) || IsDataURI(path) {
		return path
	}

	return ResolveRoot(root) + strings.TrimPrefix(path, "/")
}

// ProjectRoute builds the internal route of a project page. The slug is
// escaped as a single URI component, so reserved characters such as & = + :
// never reach the path unescaped.
func ProjectRoute(root, slug string) string {
	return ResolveRoot(root) + escapeComponent(slug) + "/"
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
