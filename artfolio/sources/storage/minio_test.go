package storage

import "testing"

func TestMinIOHostURL(t *testing.T) {
	m := &MinIOHost{bucket: "artfolio", publicURL: "https://cdn.example.com"}
	got := m.URL("images/u1/abc.png")
	want := "https://cdn.example.com/artfolio/images/u1/abc.png"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMinIOHostKey(t *testing.T) {
	m := &MinIOHost{bucket: "artfolio", publicURL: "https://cdn.example.com"}
	key, ok := m.Key(m.URL("images/u1/abc.png"))
	if !ok || key != "images/u1/abc.png" {
		t.Errorf("expected images/u1/abc.png, got %q (ok=%v)", key, ok)
	}
	if _, ok := m.Key("https://cdn.example.com/other-bucket/images/u1/abc.png"); ok {
		t.Error("expected foreign bucket URL to be rejected")
	}
}
