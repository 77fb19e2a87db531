package handler_test

import (
	"net/http"
	"testing"
)

func TestRootEndpoint(t *testing.T) {
	h := newTestRouter(defaultServices())

	rec := doRequest(t, h, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	if resp.Message == "" {
		t.Error("liveness response should carry a message")
	}
}

// The probe answers 200 even when no store connection exists; the body
// reports the degraded state instead.
func TestStoreProbeEndpoint_NoConnection(t *testing.T) {
	h := newTestRouter(defaultServices())

	rec := doRequest(t, h, http.MethodGet, "/test", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Backend          string   `json:"backend"`
		ConnectionStatus string   `json:"connection_status"`
		Collections      []string `json:"collections"`
	}
	decodeBody(t, rec, &resp)
	if resp.Backend != "running" {
		t.Errorf("backend = %q, want running", resp.Backend)
	}
	if resp.ConnectionStatus != "not connected" {
		t.Errorf("connection_status = %q, want not connected", resp.ConnectionStatus)
	}
	if len(resp.Collections) != 0 {
		t.Errorf("collections = %v, want empty", resp.Collections)
	}
}
