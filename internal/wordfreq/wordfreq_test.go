package wordfreq

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func encodeTestData(t *testing.T, bins ...[]string) []byte {
	t.Helper()
	items := []interface{}{map[string]interface{}{"format": "cB", "version": 1}}
	for _, bin := range bins {
		items = append(items, bin)
	}
	data, err := msgpack.Marshal(items)
	if err != nil {
		t.Fatalf("marshal msgpack: %v", err)
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		t.Fatalf("gzip data: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractWordsOrderAndFilter(t *testing.T) {
	data := encodeTestData(t,
		[]string{"the", "about"},
		[]string{},
		[]string{"World", "café", "it's", "about"},
		[]string{"planets", "extraordinary"},
	)
	wheelPath := writeTestWheel(t, map[string][]byte{
		"wordfreq/data/large_en.msgpack.gz": data,
	})

	words, err := ExtractWords(wheelPath, ListLarge, 10)
	if err != nil {
		t.Fatalf("ExtractWords failed: %v", err)
	}
	expected := []string{"about", "world", "planets"}
	if len(words) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, words)
	}
	for i, word := range expected {
		if words[i] != word {
			t.Fatalf("expected %q at index %d, got %q", word, i, words[i])
		}
	}
}

func TestExtractWordsLimit(t *testing.T) {
	data := encodeTestData(t, []string{"hello", "world", "again"}, []string{"more", "words"})
	wheelPath := writeTestWheel(t, map[string][]byte{
		"wordfreq/data/small_en.msgpack.gz": data,
	})

	words, err := ExtractWords(wheelPath, ListSmall, 2)
	if err != nil {
		t.Fatalf("ExtractWords failed: %v", err)
	}
	if len(words) != 2 || words[0] != "hello" || words[1] != "world" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestExtractWordsRejectsUnknownFormat(t *testing.T) {
	data, err := msgpack.Marshal([]interface{}{map[string]interface{}{"format": "zipf"}, []string{"hello"}})
	if err != nil {
		t.Fatalf("marshal msgpack: %v", err)
	}
	wheelPath := writeTestWheel(t, map[string][]byte{
		"wordfreq/data/large_en.msgpack": data,
	})
	if _, err := ExtractWords(wheelPath, ListLarge, 5); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestListTypes(t *testing.T) {
	wheelPath := writeTestWheel(t, map[string][]byte{
		"wordfreq/data/large_en.msgpack.gz":    []byte("x"),
		"wordfreq/data/small_en.msgpack.gz":    []byte("x"),
		"wordfreq/data/large_pt-br.msgpack.gz": []byte("x"),
		"wordfreq/data/jieba_zh.txt":           []byte("x"),
	})

	types, err := ListTypes(wheelPath)
	if err != nil {
		t.Fatalf("ListTypes failed: %v", err)
	}
	if len(types) != 2 || types[0] != ListLarge || types[1] != ListSmall {
		t.Fatalf("unexpected types: %v", types)
	}
}

func TestSelectListType(t *testing.T) {
	if got, ok := SelectListType([]string{ListSmall}, ListLarge); !ok || got != ListSmall {
		t.Fatalf("expected fallback to small, got %q %v", got, ok)
	}
	if got, ok := SelectListType([]string{ListLarge, ListSmall}, "Large"); !ok || got != ListLarge {
		t.Fatalf("expected large, got %q %v", got, ok)
	}
	if _, ok := SelectListType([]string{ListLarge}, ListSmall); ok {
		t.Fatalf("small must not fall back to large")
	}
}

func TestWriteAttribution(t *testing.T) {
	wheelPath := writeTestWheel(t, map[string][]byte{
		"wordfreq-3.1.1.dist-info/LICENSE": []byte("Apache License"),
	})

	outDir := t.TempDir()
	if err := WriteAttribution(wheelPath, outDir); err != nil {
		t.Fatalf("WriteAttribution failed: %v", err)
	}
	for _, name := range []string{"ATTRIBUTION.txt", "DATA_LICENSE.txt"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	license, err := os.ReadFile(filepath.Join(outDir, "LICENSE.txt"))
	if err != nil {
		t.Fatalf("expected LICENSE.txt: %v", err)
	}
	if string(license) != "Apache License" {
		t.Fatalf("unexpected license contents: %s", string(license))
	}
}

func TestDownloadLatestWheelUsesCache(t *testing.T) {
	wheel := []byte("wheel-bytes")
	downloads := 0
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()
	mux.HandleFunc("/pypi", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, `{"info":{"version":"3.1.1"},"urls":[`+
			`{"url":"%[1]s/src.tar.gz","filename":"wordfreq-3.1.1.tar.gz","packagetype":"sdist"},`+
			`{"url":"%[1]s/wheel","filename":"wordfreq-3.1.1-py3-none-any.whl","packagetype":"bdist_wheel"}]}`,
			server.URL)
	})
	mux.HandleFunc("/wheel", func(w http.ResponseWriter, _ *http.Request) {
		downloads++
		_, _ = w.Write(wheel)
	})

	cacheDir := t.TempDir()
	first, err := downloadLatestWheel(context.Background(), server.Client(), server.URL+"/pypi", cacheDir)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if first.Cached || first.Version != "3.1.1" || first.Filename != "wordfreq-3.1.1-py3-none-any.whl" {
		t.Fatalf("unexpected wheel: %+v", first)
	}
	data, err := os.ReadFile(first.Path)
	if err != nil || !bytes.Equal(data, wheel) {
		t.Fatalf("unexpected cached wheel contents: %q %v", data, err)
	}

	second, err := downloadLatestWheel(context.Background(), server.Client(), server.URL+"/pypi", cacheDir)
	if err != nil {
		t.Fatalf("second download failed: %v", err)
	}
	if !second.Cached || downloads != 1 {
		t.Fatalf("expected cached wheel after one download, got %+v (%d downloads)", second, downloads)
	}
}

func writeTestWheel(t *testing.T, files map[string][]byte) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "wordfreq-*.whl")
	if err != nil {
		t.Fatalf("failed to create temp wheel: %v", err)
	}
	defer func() {
		_ = tmpFile.Close()
	}()

	zw := zip.NewWriter(tmpFile)
	for name, data := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry: %v", err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("failed to write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return tmpFile.Name()
}
