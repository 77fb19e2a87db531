package flags

import "testing"

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    string
		wantErr bool
	}{
		{"8000", false},
		{"1", false},
		{"65535", false},
		{"", true},
		{"0", true},
		{"65536", true},
		{"-1", true},
		{"http", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.port)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.port, err, tt.wantErr)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	// Empty port defers to the PORT env var and is always acceptable.
	if err := (Config{Port: ""}).Validate(); err != nil {
		t.Errorf("empty port should validate, got %v", err)
	}
	if err := (Config{Port: "8000"}).Validate(); err != nil {
		t.Errorf("port 8000 should validate, got %v", err)
	}
	if err := (Config{Port: "99999"}).Validate(); err == nil {
		t.Error("out-of-range port should fail validation")
	}
}
