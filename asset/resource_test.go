package asset

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := NewResource(thisFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatal("expected local resource")
	}
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := NewResource(fetchUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if !res.IsRemote() {
		t.Fatal("expected remote resource")
	}

	fetchUrl = server.URL + "/file-not-found.foo"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = NewResource(fetchUrl, nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestRelativeResources(t *testing.T) {
	serverHits := 0
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits++
		if r.URL.Path == "/foo/frame1.png" {
			w.Write([]byte("OK"))
		} else if r.URL.Path == "/foo/frame2.png" {
			w.Write([]byte("OK"))
		} else {
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	res1, err := NewResource(server.URL+"/foo/frame1.png", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res1.Close()
	res2, err := NewResource("frame2.png", res1)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Close()

	if serverHits != 2 {
		t.Fatalf("expected server to receive 2 requests; got %d", serverHits)
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := NewResource("gopher://digging.png", nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestResourceConnectionRefusedError(t *testing.T) {
	_, err := NewResource("http://localhost:12345/foo.png", nil)
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected to get 'connection refused error'; got %v", err)
	}
}

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	frameFile := filepath.Join(dir, "frame.bin")
	if err := os.WriteFile(frameFile, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadAll(frameFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "\x01\x02\x03" {
		t.Fatalf("expected to read 3 bytes; got %v", data)
	}

	if _, err = ReadAll(filepath.Join(dir, "missing.bin")); err == nil {
		t.Fatal("expected an error reading a missing file")
	}
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := "# recorded frames\nframe-000.png\n\n  frame-001.png  \n/abs/frame-002.png\nhttp://example.com/frame-003.png\n"
	manifestFile := filepath.Join(dir, "frames.txt")
	if err := os.WriteFile(manifestFile, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadManifest(manifestFile)
	if err != nil {
		t.Fatal(err)
	}

	absDir, _ := filepath.Abs(dir)
	expEntries := []string{
		absDir + "/frame-000.png",
		absDir + "/frame-001.png",
		"/abs/frame-002.png",
		"http://example.com/frame-003.png",
	}
	if len(entries) != len(expEntries) {
		t.Fatalf("expected %d entries; got %d (%v)", len(expEntries), len(entries), entries)
	}
	for idx, exp := range expEntries {
		if entries[idx] != exp {
			t.Fatalf("expected entry %d to be %q; got %q", idx, exp, entries[idx])
		}
	}
}
