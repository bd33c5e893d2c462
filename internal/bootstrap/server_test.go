package bootstrap

import (
	"context"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingAuditLogger struct {
	entries []AuditLog
}

func (r *recordingAuditLogger) Log(ctx context.Context, entry AuditLog) {
	r.entries = append(r.entries, entry)
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	defer l.Close()
	_, port, _ := net.SplitHostPort(l.Addr().String())
	return port
}

func TestServe_ShutsDownOnSignal(t *testing.T) {
	audit := &recordingAuditLogger{}
	quit := make(chan os.Signal, 1)
	done := make(chan error, 1)

	go func() {
		done <- serve(http.NotFoundHandler(), ServerConfig{Port: freePort(t), ShutdownTimeout: time.Second}, audit, quit)
	}()

	quit <- syscall.SIGTERM

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Len(t, audit.entries, 1)
	assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
	assert.Equal(t, "terminated", audit.entries[0].Meta["signal"])
}

func TestServe_ReturnsListenError(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	assert.NoError(t, err)
	defer l.Close()
	_, port, _ := net.SplitHostPort(l.Addr().String())

	err = serve(http.NotFoundHandler(), ServerConfig{Port: port}, &recordingAuditLogger{}, make(chan os.Signal))

	assert.Error(t, err)
}
