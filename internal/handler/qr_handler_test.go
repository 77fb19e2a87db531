package handler_test

import (
	"bytes"
	"net/http"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateQREndpoint(t *testing.T) {
	h := newTestRouter(defaultServices())

	rec := doRequest(t, h, http.MethodGet, "/api/qr/12", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), pngMagic) {
		t.Error("body does not start with the PNG signature")
	}
}

func TestGenerateQREndpoint_BadTableNumber(t *testing.T) {
	h := newTestRouter(defaultServices())

	rec := doRequest(t, h, http.MethodGet, "/api/qr/patio", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}
