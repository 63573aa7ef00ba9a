package proxy

import "testing"

func TestParseEndpoint(t *testing.T) {
	cases := []struct {
		raw  string
		want Endpoint
		ok   bool
	}{
		{"1.2.3.4:8080", "1.2.3.4:8080", true},
		{"  1.2.3.4:8080\n", "1.2.3.4:8080", true},
		{"proxy.example.com:3128", "proxy.example.com:3128", true},
		{"", "", false},
		{"1.2.3.4", "", false},
		{"1.2.3.4:", "", false},
		{":8080", "", false},
		{"1.2.3.4:99999", "", false},
		{"1.2.3.4:0", "", false},
		{"1.2.3.4:abc", "", false},
		{"IP Address:Port", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseEndpoint(tc.raw)
		if ok != tc.ok {
			t.Fatalf("ParseEndpoint(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParseEndpoint(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDedupe(t *testing.T) {
	in := []Endpoint{"1.1.1.1:80", "2.2.2.2:8080", "1.1.1.1:80", "3.3.3.3:80", "2.2.2.2:8080"}
	out := Dedupe(in)

	want := []Endpoint{"1.1.1.1:80", "2.2.2.2:8080", "3.3.3.3:80"}
	if len(out) != len(want) {
		t.Fatalf("expected %d endpoints, got %d", len(want), len(out))
	}
	for i, e := range want {
		if out[i] != e {
			t.Fatalf("expected %s at position %d, got %s", e, i, out[i])
		}
	}
}

func TestEndpointURL(t *testing.T) {
	e := Endpoint("1.2.3.4:8080")
	if e.URL() != "http://1.2.3.4:8080" {
		t.Fatalf("unexpected proxy URL %s", e.URL())
	}
}
