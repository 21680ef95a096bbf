// Command healthcheck exits 0 when the repocanvas server in the same
// container reports healthy, and 1 otherwise. It is the Docker HEALTHCHECK
// entrypoint, so it links nothing beyond the standard library.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	healthPath  = "/api/v1/health"
	defaultAddr = "127.0.0.1:8080"
	timeout     = 2 * time.Second
)

func main() {
	if err := ping(loopbackAddr(os.Getenv("REPOCANVAS_LISTEN_ADDR"))); err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck:", err)
		os.Exit(1)
	}
}

func ping(addr string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+healthPath, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := (&http.Client{Timeout: timeout}).Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", healthPath, err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: status %d", healthPath, resp.StatusCode)
	}
	return nil
}

// loopbackAddr maps the server's listen address to one dialable from inside
// the container: an empty or wildcard host becomes 127.0.0.1, and an
// unparseable value falls back to the default port.
func loopbackAddr(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return defaultAddr
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
