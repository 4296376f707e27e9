package storage

import "testing"

func TestObjectKey(t *testing.T) {
	base := "https://img.example.com"

	cases := []struct {
		name string
		url  string
		want string
	}{
		{"match", "https://img.example.com/restaurantes/1700000000000.jpg", "restaurantes/1700000000000.jpg"},
		{"trailing slash tolerated", "https://img.example.com/restaurantes/a.png", "restaurantes/a.png"},
		{"foreign host", "https://other.example.com/restaurantes/a.png", ""},
		{"not a url", "garbage", ""},
		{"base only", "https://img.example.com/", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ObjectKey(base, tc.url); got != tc.want {
				t.Errorf("ObjectKey(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestObjectKey_EmptyBase(t *testing.T) {
	if got := ObjectKey("", "https://img.example.com/a.png"); got != "" {
		t.Errorf("expected empty key with no base configured, got %q", got)
	}
}
