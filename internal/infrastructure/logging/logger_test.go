package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"
)

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	ctx := ContextWithRequestID(context.Background(), "req-42")
	WithFields(ctx, map[string]interface{}{"plate": "ABC123"}).Info("[session][open] success")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if line["request_id"] != "req-42" {
		t.Fatalf("expected request_id, got %v", line["request_id"])
	}
	if line["plate"] != "ABC123" {
		t.Fatalf("expected plate field, got %v", line["plate"])
	}
	if line["message"] != "[session][open] success" || line["severity"] != "info" {
		t.Fatalf("unexpected field map: %v", line)
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	if id := RequestIDFromContext(context.Background()); id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
}
