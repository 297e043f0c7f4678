package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ergosmind/mindstyle-server/internal/delivery"
	"github.com/ergosmind/mindstyle-server/internal/layout"
	"github.com/ergosmind/mindstyle-server/internal/rendering"
	"github.com/ergosmind/mindstyle-server/internal/styles"
)

type fakeDelivery struct {
	sent        []delivery.Message
	hadDeadline bool
	err         error
}

func (f *fakeDelivery) Send(ctx context.Context, msg delivery.Message) error {
	_, f.hadDeadline = ctx.Deadline()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestServer(t *testing.T, sender Delivery) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	engine := layout.NewEngine(styles.NewCatalog(), rendering.NewMetrics())
	srv := New(Config{Port: 0, PublicDir: t.TempDir(), SendTimeout: 5 * time.Second}, engine, sender)
	t.Cleanup(srv.rateLimiter.Stop)
	return srv
}

func doRequest(srv *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

const testPayload = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"dominantStyles": ["A"],
	"counts": {"A": 9, "B": 4, "C": 1, "D": 2, "E": 0}
}`

func TestHandleSendPDF_Success(t *testing.T) {
	fake := &fakeDelivery{}
	srv := newTestServer(t, fake)

	rec := doRequest(srv, http.MethodPost, "/send-pdf", []byte(testPayload))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PDF sent successfully", resp["message"])

	require.Len(t, fake.sent, 1)
	msg := fake.sent[0]
	assert.Equal(t, "jane@example.com", msg.To)
	assert.Equal(t, "Mindstyle Assessment Results for Jane Doe", msg.Subject)
	assert.Equal(t, "Jane Doe_Mindstyle_Assessment.pdf", msg.AttachmentName)
	assert.True(t, bytes.HasPrefix(msg.Attachment, []byte("%PDF")), "attachment should be a PDF")
	assert.True(t, fake.hadDeadline, "delivery must run under a send timeout")
}

func TestHandleSendPDF_SchemaViolation(t *testing.T) {
	fake := &fakeDelivery{}
	srv := newTestServer(t, fake)

	payload := `{"email":"jane@example.com","dominantStyles":["A"],"counts":{"A":1,"B":0,"C":0,"D":0,"E":0}}`
	rec := doRequest(srv, http.MethodPost, "/send-pdf", []byte(payload))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "validation failed")
	assert.Empty(t, fake.sent, "rejected input must never reach delivery")
}

func TestHandleSendPDF_OversizedBody(t *testing.T) {
	fake := &fakeDelivery{}
	srv := newTestServer(t, fake)

	rec := doRequest(srv, http.MethodPost, "/send-pdf", bytes.Repeat([]byte("a"), maxRequestBody+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Request body too large", resp["error"])
	assert.Empty(t, fake.sent)
}

func TestHandleSendPDF_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, &fakeDelivery{})

	rec := doRequest(srv, http.MethodPost, "/send-pdf", []byte(`{"name":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSendPDF_BlankName(t *testing.T) {
	srv := newTestServer(t, &fakeDelivery{})

	// A single space survives the schema's minLength but not layout
	// validation; the concrete message must reach the client.
	payload := strings.Replace(testPayload, `"Jane Doe"`, `" "`, 1)
	rec := doRequest(srv, http.MethodPost, "/send-pdf", []byte(payload))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "name")
}

func TestHandleSendPDF_DeliveryFailure(t *testing.T) {
	fake := &fakeDelivery{err: &delivery.DeliveryError{Message: "failed to send message"}}
	srv := newTestServer(t, fake)

	rec := doRequest(srv, http.MethodPost, "/send-pdf", []byte(testPayload))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, genericFailure, resp["error"], "internal failures must not leak detail")
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &fakeDelivery{})

	rec := doRequest(srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestStaticAssets(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Mindstyle Quiz</h1>"), 0o644))

	engine := layout.NewEngine(styles.NewCatalog(), rendering.NewMetrics())
	srv := New(Config{Port: 0, PublicDir: dir}, engine, &fakeDelivery{})
	t.Cleanup(srv.rateLimiter.Stop)

	rec := doRequest(srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mindstyle Quiz")

	rec = doRequest(srv, http.MethodGet, "/missing.js", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &fakeDelivery{})

	rec := doRequest(srv, http.MethodOptions, "/send-pdf", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRateLimit_SendPDF(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	engine := layout.NewEngine(styles.NewCatalog(), rendering.NewMetrics())
	srv := New(Config{Port: 0, PublicDir: t.TempDir()}, engine, &fakeDelivery{})
	t.Cleanup(srv.rateLimiter.Stop)

	// Burst is five; malformed bodies still consume tokens because the
	// limiter sits outside the handler.
	for i := 0; i < 5; i++ {
		rec := doRequest(srv, http.MethodPost, "/send-pdf", []byte(`{`))
		require.Equal(t, http.StatusBadRequest, rec.Code, "request %d should reach the handler", i+1)
		assert.Equal(t, "20", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := doRequest(srv, http.MethodPost, "/send-pdf", []byte(`{`))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp["error"])
}
