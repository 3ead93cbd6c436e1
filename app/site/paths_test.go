package site

import "testing"

func TestResolveRoot(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "empty defaults to current directory", value: "", expected: "./"},
		{name: "whitespace defaults to current directory", value: "   ", expected: "./"},
		{name: "parent without separator", value: "..", expected: "../"},
		{name: "already terminated", value: "../../", expected: "../../"},
		{name: "absolute path", value: "/portfolio", expected: "/portfolio/"},
		{name: "trimmed", value: " ../ ", expected: "../"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRoot(tt.value); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestIsExternalURL(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"https://example.com/x", true},
		{"HTTP://EXAMPLE.COM", true},
		{"http://", false},
		{"//example.com", false},
		{"ftp://example.com", false},
		{"assets/a.png", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsExternalURL(tt.value); got != tt.expected {
			t.Errorf("IsExternalURL(%q): expected %t, got %t", tt.value, tt.expected, got)
		}
	}
}

func TestResolveAsset(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		path     string
		expected string
	}{
		{name: "relative", root: "./", path: "assets/a.png", expected: "./assets/a.png"},
		{name: "leading slash stripped", root: "./", path: "/assets/a.png", expected: "./assets/a.png"},
		{name: "nested root", root: "../", path: "/assets/a.png", expected: "../assets/a.png"},
		{name: "external kept", root: "../", path: "https://cdn.example.com/a.png", expected: "https://cdn.example.com/a.png"},
		{name: "data uri kept", root: "../", path: "data:image/png;base64,AAAA", expected: "data:image/png;base64,AAAA"},
		{name: "empty uses placeholder", root: "../", path: "", expected: "../assets/placeholder.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAsset(tt.root, tt.path, "assets/placeholder.svg")
			if got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestResolveAssetLeadingSlashRoundTrip(t *testing.T) {
	a := ResolveAsset("./", "assets/a.png", "")
	b := ResolveAsset("./", "/assets/a.png", "")
	if a != b || a != "./assets/a.png" {
		t.Errorf("Expected both paths to resolve to './assets/a.png', got '%s' and '%s'", a, b)
	}
}

func TestProjectRoute(t *testing.T) {
	if got := ProjectRoute("./", "my project"); got != "./my%20project/" {
		t.Errorf("Expected './my%%20project/', got '%s'", got)
	}
	if got := ProjectRoute("", "a/b"); got != "./a%2Fb/" {
		t.Errorf("Expected './a%%2Fb/', got '%s'", got)
	}
}

func TestProjectRouteEscapesReservedCharacters(t *testing.T) {
	tests := []struct {
		slug     string
		expected string
	}{
		{slug: "a&b=c+d:e", expected: "../a%26b%3Dc%2Bd%3Ae/"},
		{slug: "x@y$z", expected: "../x%40y%24z/"},
		{slug: "what?#", expected: "../what%3F%23/"},
		{slug: "plain-slug_1.0~", expected: "../plain-slug_1.0~/"},
	}

	for _, tt := range tests {
		if got := ProjectRoute("../", tt.slug); got != tt.expected {
			t.Errorf("Expected route '%s' for slug '%s', got '%s'", tt.expected, tt.slug, got)
		}
	}
}
