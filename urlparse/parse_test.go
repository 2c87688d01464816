package urlparse

import "testing"

func TestParse_FullURL(t *testing.T) {
	parts, err := Parse("http://wikipedia.com/elo321/123elo?build_id=johnny&name=john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts.Host != "wikipedia.com" {
		t.Errorf("expected wikipedia.com, got %q", parts.Host)
	}
	if parts.Port != 80 {
		t.Errorf("expected port 80, got %d", parts.Port)
	}
	if parts.Path != "/elo321/123elo" {
		t.Errorf("expected /elo321/123elo, got %q", parts.Path)
	}
	if parts.Query != "build_id=johnny&name=john" {
		t.Errorf("unexpected query %q", parts.Query)
	}
}

func TestParse_BareHost(t *testing.T) {
	parts, err := Parse("wikipedia.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts.Host != "wikipedia.com" {
		t.Errorf("expected wikipedia.com, got %q", parts.Host)
	}
	if parts.Port != 80 {
		t.Errorf("expected default port 80, got %d", parts.Port)
	}
	if parts.Path != "/" {
		t.Errorf("expected default path /, got %q", parts.Path)
	}
	if parts.Query != "" {
		t.Errorf("expected empty query, got %q", parts.Query)
	}
}

func TestParse_ExplicitPort(t *testing.T) {
	parts, err := Parse("localhost:5000/home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts.Host != "localhost" {
		t.Errorf("expected localhost, got %q", parts.Host)
	}
	if parts.Port != 5000 {
		t.Errorf("expected 5000, got %d", parts.Port)
	}
	if parts.Path != "/home" {
		t.Errorf("expected /home, got %q", parts.Path)
	}
}

func TestParse_SchemeDoesNotOverrideDefaultPort(t *testing.T) {
	parts, err := Parse("https://example.com/x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts.Port != 80 {
		t.Errorf("port defaults to 80 whenever absent, got %d", parts.Port)
	}
}

func TestParse_Failures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"malformed port", "example.com:notaport/x"},
		{"missing host", "http:///path"},
		{"control character", "example.com/\x00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.raw); err == nil {
				t.Errorf("expected error for %q", tc.raw)
			}
		})
	}
}

func TestParse_QueryOnly(t *testing.T) {
	parts, err := Parse("example.com?k=v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts.Path != "/" {
		t.Errorf("expected default path, got %q", parts.Path)
	}
	if parts.Query != "k=v" {
		t.Errorf("expected k=v, got %q", parts.Query)
	}
}
