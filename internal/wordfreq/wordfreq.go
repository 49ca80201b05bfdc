// Package wordfreq builds English dictionaries from the wordfreq dataset.
//
// The dataset ships as a Python wheel. Each word list inside it is a
// gzipped msgpack array: a header map followed by bins of words, where the
// bin index is the negated frequency in centibels. Bins are therefore
// already ordered from most to least frequent.
package wordfreq

import (
	"archive/zip"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/verte-zerg/wordle-helper/internal/model"
	"github.com/verte-zerg/wordle-helper/internal/wordlist"
)

const pypiEndpoint = "https://pypi.org/pypi/wordfreq/json"

const (
	// Language is the only wordfreq language extracted.
	Language = "en"
	// ListLarge and ListSmall name the wordfreq list sizes.
	ListLarge = "large"
	ListSmall = "small"
)

const dataPrefix = "wordfreq/data/"

// Wheel describes a cached wordfreq wheel.
type Wheel struct {
	Version  string
	Path     string
	Filename string
	Cached   bool
}

type pypiURL struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Packagetype string `json:"packagetype"`
}

type pypiResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []pypiURL `json:"urls"`
}

type header struct {
	Format  string `msgpack:"format"`
	Version int    `msgpack:"version"`
}

// DownloadLatestWheel fetches the latest wordfreq wheel into cacheDir,
// reusing a cached copy of the same file.
func DownloadLatestWheel(ctx context.Context, cacheDir string) (Wheel, error) {
	return downloadLatestWheel(ctx, http.DefaultClient, pypiEndpoint, cacheDir)
}

func downloadLatestWheel(ctx context.Context, client *http.Client, endpoint, cacheDir string) (Wheel, error) {
	if cacheDir == "" {
		return Wheel{}, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Wheel{}, fmt.Errorf("failed to create cache dir: %w", err)
	}

	resp, err := httpRequest(ctx, client, endpoint)
	if err != nil {
		return Wheel{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return Wheel{}, fmt.Errorf("unexpected pypi status: %s", resp.Status)
	}

	var payload pypiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Wheel{}, fmt.Errorf("failed to decode pypi response: %w", err)
	}
	if payload.Info.Version == "" {
		return Wheel{}, fmt.Errorf("missing version in pypi response")
	}

	url, filename := pickWheelURL(payload.URLs)
	if url == "" || filename == "" {
		return Wheel{}, fmt.Errorf("no suitable wordfreq wheel found")
	}

	destPath := filepath.Join(cacheDir, filename)
	if _, err := os.Stat(destPath); err == nil {
		return Wheel{Version: payload.Info.Version, Path: destPath, Filename: filename, Cached: true}, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Wheel{}, fmt.Errorf("failed to stat cached wheel: %w", err)
	}

	if err := download(ctx, client, url, destPath); err != nil {
		return Wheel{}, err
	}
	return Wheel{Version: payload.Info.Version, Path: destPath, Filename: filename}, nil
}

func download(ctx context.Context, client *http.Client, url, destPath string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), "wordfreq-*.whl")
	if err != nil {
		return fmt.Errorf("failed to create temp wheel: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	resp, err := httpRequest(ctx, client, url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected wheel status: %s", resp.Status)
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("failed to download wheel: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp wheel: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to move wheel into cache: %w", err)
	}
	return nil
}

func httpRequest(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if client.Timeout == 0 {
		copied := *client
		copied.Timeout = 60 * time.Second
		client = &copied
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func pickWheelURL(urls []pypiURL) (string, string) {
	for _, u := range urls {
		if u.Packagetype == "bdist_wheel" && strings.HasSuffix(u.Filename, "py3-none-any.whl") {
			return u.URL, u.Filename
		}
	}
	for _, u := range urls {
		if u.Packagetype == "bdist_wheel" {
			return u.URL, u.Filename
		}
	}
	return "", ""
}

// ListTypes returns the English list sizes present in the wheel, sorted.
func ListTypes(wheelPath string) ([]string, error) {
	if wheelPath == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	var types []string
	for _, file := range reader.File {
		if listType, ok := parseDataFile(file.Name); ok {
			types = append(types, listType)
		}
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no %s word lists found in wordfreq wheel", Language)
	}
	sort.Strings(types)
	return types, nil
}

// SelectListType picks desired when available, falling back from large to
// small.
func SelectListType(available []string, desired string) (string, bool) {
	has := func(name string) bool {
		for _, a := range available {
			if a == name {
				return true
			}
		}
		return false
	}
	desired = strings.ToLower(strings.TrimSpace(desired))
	if has(desired) {
		return desired, true
	}
	if desired == ListLarge && has(ListSmall) {
		return ListSmall, true
	}
	return "", false
}

// parseDataFile reports the list type of an English data file name such as
// "wordfreq/data/large_en.msgpack.gz".
func parseDataFile(name string) (string, bool) {
	name = strings.ToLower(name)
	if !strings.HasPrefix(name, dataPrefix) {
		return "", false
	}
	base := trimDataSuffix(strings.TrimPrefix(name, dataPrefix))
	for _, listType := range []string{ListLarge, ListSmall} {
		if base == listType+"_"+Language {
			return listType, true
		}
	}
	return "", false
}

func trimDataSuffix(name string) string {
	switch {
	case strings.HasSuffix(name, ".msgpack.gz"):
		return strings.TrimSuffix(name, ".msgpack.gz")
	case strings.HasSuffix(name, ".msgpack"):
		return strings.TrimSuffix(name, ".msgpack")
	default:
		return name
	}
}

// ExtractWords returns up to limit distinct lowercase English words of
// model.MinWordLength to model.MaxWordLength ASCII letters, most frequent
// first.
func ExtractWords(wheelPath, listType string, limit int) ([]string, error) {
	if wheelPath == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	bins, err := readBins(wheelPath, listType)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, limit)
	seen := make(map[string]struct{})
	for _, bin := range bins {
		for _, raw := range bin {
			word, ok := wordlist.Normalize(raw)
			if !ok || len(word) < model.MinWordLength || len(word) > model.MaxWordLength {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			words = append(words, strings.ToLower(word))
			if len(words) >= limit {
				return words, nil
			}
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words found in %s_%s", listType, Language)
	}
	return words, nil
}

func readBins(wheelPath, listType string) ([][]string, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	var dataFile *zip.File
	for _, file := range reader.File {
		if t, ok := parseDataFile(file.Name); ok && t == listType {
			dataFile = file
			break
		}
	}
	if dataFile == nil {
		return nil, fmt.Errorf("no data file found for %s_%s", listType, Language)
	}

	rc, err := dataFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	var r io.Reader = rc
	if strings.HasSuffix(dataFile.Name, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		r = gz
	}
	return decodeBins(r)
}

func decodeBins(r io.Reader) ([][]string, error) {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wordfreq data: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("wordfreq data contained no entries")
	}

	var hdr header
	if err := dec.Decode(&hdr); err != nil {
		return nil, fmt.Errorf("failed to decode wordfreq header: %w", err)
	}
	if hdr.Format != "cB" {
		return nil, fmt.Errorf("unsupported wordfreq format %q", hdr.Format)
	}

	bins := make([][]string, 0, n-1)
	for i := 1; i < n; i++ {
		var words []string
		if err := dec.Decode(&words); err != nil {
			return nil, fmt.Errorf("failed to decode wordfreq bin %d: %w", i-1, err)
		}
		bins = append(bins, words)
	}
	return bins, nil
}

// WriteAttribution writes attribution and license files next to a
// generated dictionary.
func WriteAttribution(wheelPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	attrText := strings.Join([]string{
		"Dictionary generated from the wordfreq dataset.",
		"Source: https://github.com/rspeer/wordfreq",
		"Data license: Creative Commons Attribution-ShareAlike 4.0 International (CC BY-SA 4.0).",
		"This word list is licensed CC BY-SA 4.0: https://creativecommons.org/licenses/by-sa/4.0/",
		fmt.Sprintf("Changes were made: filtered to English words of %d to %d ASCII letters and truncated to the requested size.",
			model.MinWordLength, model.MaxWordLength),
		"Includes data from Google Books Ngrams (acknowledgement requested by wordfreq): https://books.google.com/ngrams",
		"Includes data from the Leeds Internet Corpus: https://corpus.leeds.ac.uk/",
		"For other upstream sources, see the wordfreq project documentation.",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(outDir, "ATTRIBUTION.txt"), []byte(attrText), 0o644); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}

	licenseText, err := readWheelLicense(wheelPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "LICENSE.txt"), licenseText, 0o644); err != nil {
		return fmt.Errorf("failed to write license: %w", err)
	}
	dataLicenseText := "This word list is licensed under CC BY-SA 4.0.\nhttps://creativecommons.org/licenses/by-sa/4.0/\n"
	if err := os.WriteFile(filepath.Join(outDir, "DATA_LICENSE.txt"), []byte(dataLicenseText), 0o644); err != nil {
		return fmt.Errorf("failed to write data license: %w", err)
	}
	return nil
}

func readWheelLicense(wheelPath string) ([]byte, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel for license: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, file := range reader.File {
		if !strings.Contains(strings.ToLower(file.Name), "license") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open license: %w", err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read license: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("license file not found in wheel")
}
