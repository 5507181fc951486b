package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCall struct {
	Op   string
	Body map[string]interface{}
}

// fakeDynamo answers DynamoDB JSON requests with canned responses per operation.
type fakeDynamo struct {
	mu        sync.Mutex
	calls     []fakeCall
	responses map[string]func() (int, string)
}

func (f *fakeDynamo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	op := strings.TrimPrefix(r.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")
	raw, _ := io.ReadAll(r.Body)
	body := map[string]interface{}{}
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{Op: op, Body: body})
	respond, ok := f.responses[op]
	f.mu.Unlock()

	status, payload := http.StatusOK, "{}"
	if ok {
		status, payload = respond()
	}
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(payload))
}

func (f *fakeDynamo) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Op)
	}
	return out
}

func newFakeSessionRepo(t *testing.T, f *fakeDynamo) *SessionDynamoRepository {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("local", "local", ""),
		RetryMaxAttempts: 1,
	})
	return NewSessionDynamoRepository(client, "sessions", "active_plates")
}

func sessionItemJSON(status string) string {
	return `{"Item":{"id":{"S":"s-1"},"plate":{"S":"ABC123"},"category":{"S":"car"},"space_code":{"S":"C1"},` +
		`"status":{"S":"` + status + `"},"entry_time":{"S":"2026-03-01T10:00:00Z"},"elapsed_ns":{"N":"0"},"cost":{"N":"0"}}}`
}

func TestSessionDynamoRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("active session and plate guard go in one transaction", func(t *testing.T) {
		f := &fakeDynamo{responses: map[string]func() (int, string){
			"GetItem": func() (int, string) { return http.StatusOK, sessionItemJSON("active") },
		}}
		repo := newFakeSessionRepo(t, f)

		require.NoError(t, repo.Delete(ctx, "s-1"))
		assert.Equal(t, []string{"GetItem", "TransactWriteItems"}, f.ops())

		items, ok := f.calls[1].Body["TransactItems"].([]interface{})
		require.True(t, ok)
		require.Len(t, items, 2)
		tables := []string{}
		for _, it := range items {
			del := it.(map[string]interface{})["Delete"].(map[string]interface{})
			tables = append(tables, del["TableName"].(string))
		}
		assert.ElementsMatch(t, []string{"sessions", "active_plates"}, tables)
	})

	t.Run("transaction failure leaves both records", func(t *testing.T) {
		f := &fakeDynamo{responses: map[string]func() (int, string){
			"GetItem": func() (int, string) { return http.StatusOK, sessionItemJSON("active") },
			"TransactWriteItems": func() (int, string) {
				return http.StatusBadRequest, `{"__type":"com.amazonaws.dynamodb.v20120810#ValidationException","message":"boom"}`
			},
		}}
		repo := newFakeSessionRepo(t, f)

		require.Error(t, repo.Delete(ctx, "s-1"))
		assert.Equal(t, []string{"GetItem", "TransactWriteItems"}, f.ops())
	})

	t.Run("closed session only drops its row", func(t *testing.T) {
		f := &fakeDynamo{responses: map[string]func() (int, string){
			"GetItem": func() (int, string) { return http.StatusOK, sessionItemJSON("closed") },
		}}
		repo := newFakeSessionRepo(t, f)

		require.NoError(t, repo.Delete(ctx, "s-1"))
		assert.Equal(t, []string{"GetItem", "DeleteItem"}, f.ops())
		assert.Equal(t, "sessions", f.calls[1].Body["TableName"])
	})

	t.Run("missing session is a no-op", func(t *testing.T) {
		f := &fakeDynamo{responses: map[string]func() (int, string){
			"GetItem": func() (int, string) { return http.StatusOK, `{}` },
		}}
		repo := newFakeSessionRepo(t, f)

		require.NoError(t, repo.Delete(ctx, "s-1"))
		assert.Equal(t, []string{"GetItem"}, f.ops())
	})
}
