package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestRootCmdRegistersCommands(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"balances", "next-sequence", "journal"} {
		if !names[expected] {
			t.Fatalf("expected command %s to be registered", expected)
		}
	}
}

func TestNextSequencePrintsNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/businesses/biz-1/next-sequence" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sequence_number":12}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, func() {
		nextSequence("biz-1")
	})

	if !strings.Contains(out, "12") {
		t.Fatalf("expected sequence number in output, got %q", out)
	}
}

func TestJournalPrintsTotals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("from"); got != "2024-01-01" {
			t.Fatalf("unexpected from %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"transactions": [
				{"id":1,"sequence_number":1,"description":"cash sale","date":"2024-01-05","debit_subtotal":"100","credit_subtotal":"100"}
			],
			"debit_total":"100",
			"credit_total":"100"
		}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, func() {
		journal("biz-1", "2024-01-01", "2024-01-31")
	})

	if !strings.Contains(out, "Totals: debit=100 credit=100") {
		t.Fatalf("expected totals in output, got %q", out)
	}
	if !strings.Contains(out, "cash sale") {
		t.Fatalf("expected transaction line in output, got %q", out)
	}
}

func TestRecalculatePrintsConfirmation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, func() {
		recalculate("biz-1")
	})

	if !strings.Contains(out, "Balances recalculated") {
		t.Fatalf("expected confirmation, got %q", out)
	}
}
