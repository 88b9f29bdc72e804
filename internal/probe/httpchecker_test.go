package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hamed0406/upnotif/internal/domain"
)

func TestHTTPChecker_StatusOK(t *testing.T) {
	var method string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.Success {
		t.Fatalf("want success, got %+v", out)
	}
	if method != http.MethodGet {
		t.Fatalf("want GET, got %s", method)
	}
	if out.StatusCode != 200 {
		t.Fatalf("want status 200, got %d", out.StatusCode)
	}
	if !strings.HasPrefix(out.Message, "200") {
		t.Fatalf("want message to start with 200, got %q", out.Message)
	}
	if out.LatencyMS < 0 {
		t.Fatalf("latency should be >= 0, got %f", out.LatencyMS)
	}
}

func TestHTTPChecker_Status500(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if out.Success {
		t.Fatalf("want failure, got %+v", out)
	}
	if out.StatusCode != 500 {
		t.Fatalf("want status 500, got %d", out.StatusCode)
	}
	if !strings.HasPrefix(out.Message, "500") {
		t.Fatalf("want message to start with 500, got %q", out.Message)
	}
}

// 3xx without a Location header is not followed and is not a success.
func TestHTTPChecker_NonSuccessBelow400(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer s.Close()

	out := NewHTTPChecker(2*time.Second).Check(context.Background(), s.URL)
	if out.Success {
		t.Fatalf("want 304 to be a failure, got %+v", out)
	}
}

func TestHTTPChecker_TimeoutSetsStatusZero(t *testing.T) {
	// Server sleeps longer than client timeout
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	chk := NewHTTPChecker(50 * time.Millisecond)
	out := chk.Check(context.Background(), s.URL)
	if out.Success {
		t.Fatalf("want failure due to timeout, got %+v", out)
	}
	if out.StatusCode != 0 {
		t.Fatalf("want status 0 on transport error, got %d", out.StatusCode)
	}
	if out.Message == "" {
		t.Fatalf("want non-empty error message")
	}
}

func TestHTTPChecker_ConnectionRefused(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := s.URL
	s.Close()

	out := NewHTTPChecker(time.Second).Check(context.Background(), addr)
	if out.Success || out.StatusCode != 0 {
		t.Fatalf("want transport failure, got %+v", out)
	}
}

func TestHTTPChecker_BadURL(t *testing.T) {
	out := NewHTTPChecker(time.Second).Check(context.Background(), "http://[::1")
	if out.Success {
		t.Fatalf("want failure for unparsable url, got %+v", out)
	}
}

func TestNewHTTPChecker_DefaultTimeout(t *testing.T) {
	chk := NewHTTPChecker(0)
	if chk.Timeout != DefaultTimeout || chk.Client.Timeout != DefaultTimeout {
		t.Fatalf("want default timeout %v, got %v / %v", DefaultTimeout, chk.Timeout, chk.Client.Timeout)
	}
}

func TestClassify_TimeoutAndServerErrorAreBothDown(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer broken.Close()
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer healthy.Close()

	chk := NewHTTPChecker(50 * time.Millisecond)
	ctx := context.Background()
	if got, _ := Classify(ctx, chk, slow.URL); got != domain.Down {
		t.Fatalf("timeout: want DOWN, got %s", got)
	}
	if got, _ := Classify(ctx, chk, broken.URL); got != domain.Down {
		t.Fatalf("500: want DOWN, got %s", got)
	}
	if got, _ := Classify(ctx, chk, healthy.URL); got != domain.Up {
		t.Fatalf("204: want UP, got %s", got)
	}
}
