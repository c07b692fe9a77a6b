package gsheets_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"study-slot-scheduler/pkg/gsheets"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

// fakeSheetsAPI emulates the handful of Sheets endpoints the client touches.
type fakeSheetsAPI struct {
	tabs      []string
	headerRow []string
	calls     []string
}

func (f *fakeSheetsAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case strings.Contains(path, ":batchUpdate"):
			f.calls = append(f.calls, "addSheet")
			json.NewEncoder(w).Encode(map[string]any{})

		case strings.Contains(path, ":clear"):
			f.calls = append(f.calls, "clear")
			json.NewEncoder(w).Encode(map[string]any{})

		case strings.Contains(path, "/values/") && r.Method == http.MethodGet:
			f.calls = append(f.calls, "readRow")
			values := [][]any{}
			if len(f.headerRow) > 0 {
				row := make([]any, len(f.headerRow))
				for i, c := range f.headerRow {
					row[i] = c
				}
				values = append(values, row)
			}
			json.NewEncoder(w).Encode(map[string]any{"values": values})

		case strings.Contains(path, "/values/") && r.Method == http.MethodPut:
			f.calls = append(f.calls, "write:"+r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{})

		case r.Method == http.MethodGet:
			f.calls = append(f.calls, "getSpreadsheet")
			sheets := make([]map[string]any, 0, len(f.tabs))
			for _, tab := range f.tabs {
				sheets = append(sheets, map[string]any{"properties": map[string]any{"title": tab}})
			}
			json.NewEncoder(w).Encode(map[string]any{"sheets": sheets})

		default:
			http.Error(w, "unexpected request", http.StatusTeapot)
		}
	}
}

func newTestClient(t *testing.T, fake *fakeSheetsAPI) *gsheets.Client {
	t.Helper()

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	httpClient := &http.Client{
		Transport: &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      strings.TrimPrefix(server.URL, "http://"),
		},
	}

	client, err := gsheets.NewClientFromHTTP(context.Background(), httpClient, "spreadsheet-1")
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	return client
}

var header = []string{"Khung giờ", "Môn học", "Video (VI)", "Video (EN)"}

func TestEnsureSheet(t *testing.T) {
	t.Run("Creates missing tab and writes header", func(t *testing.T) {
		fake := &fakeSheetsAPI{tabs: []string{"Other"}}
		client := newTestClient(t, fake)

		if err := client.EnsureSheet(context.Background(), "Minh", header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"getSpreadsheet", "addSheet", "readRow"}
		for i, call := range want {
			if i >= len(fake.calls) || fake.calls[i] != call {
				t.Fatalf("expected call sequence %v, got %v", want, fake.calls)
			}
		}
		// Empty header row triggers a header write.
		if len(fake.calls) != 4 || !strings.HasPrefix(fake.calls[3], "write:") {
			t.Errorf("expected header write, got %v", fake.calls)
		}
	})

	t.Run("Matching header writes nothing", func(t *testing.T) {
		fake := &fakeSheetsAPI{tabs: []string{"Minh"}, headerRow: header}
		client := newTestClient(t, fake)

		if err := client.EnsureSheet(context.Background(), "Minh", header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, call := range fake.calls {
			if strings.HasPrefix(call, "write:") || call == "addSheet" {
				t.Errorf("expected no mutation, got %v", fake.calls)
			}
		}
	})

	t.Run("Mismatched header is rewritten", func(t *testing.T) {
		fake := &fakeSheetsAPI{tabs: []string{"Minh"}, headerRow: []string{"wrong"}}
		client := newTestClient(t, fake)

		if err := client.EnsureSheet(context.Background(), "Minh", header); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		last := fake.calls[len(fake.calls)-1]
		if !strings.HasPrefix(last, "write:") {
			t.Errorf("expected header rewrite, got %v", fake.calls)
		}
	})
}

func TestWriteRows(t *testing.T) {
	fake := &fakeSheetsAPI{}
	client := newTestClient(t, fake)

	rows := [][]string{
		{"07:00 - 07:50", "Toán", "vi-link", "en-link"},
		{"08:00 - 08:50", "Lý", "vi-link", "en-link"},
	}
	if err := client.WriteRows(context.Background(), "Minh", rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.calls) != 1 || !strings.HasPrefix(fake.calls[0], "write:") {
		t.Fatalf("expected one write call, got %v", fake.calls)
	}
	// Rows land immediately below the header.
	if !strings.Contains(fake.calls[0], "A2") {
		t.Errorf("expected write at A2, got %q", fake.calls[0])
	}
}

func TestClearRows(t *testing.T) {
	fake := &fakeSheetsAPI{}
	client := newTestClient(t, fake)

	if err := client.ClearRows(context.Background(), "Minh"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "clear" {
		t.Fatalf("expected one clear call, got %v", fake.calls)
	}
}
