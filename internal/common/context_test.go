package common

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("empty context request id = %q", got)
	}
	ctx = WithRequestID(ctx, "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("request id = %q, want req-1", got)
	}
}

func TestScanIDRoundTrip(t *testing.T) {
	ctx := WithScanID(context.Background(), "scan-9")
	if got := ScanIDFromContext(ctx); got != "scan-9" {
		t.Errorf("scan id = %q, want scan-9", got)
	}
	if got := ScanIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context scan id = %q", got)
	}
}
