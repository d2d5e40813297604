// Fetch is a very simple client for polling widget endpoints during
// development, the way a dashboard would.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
)

var (
	url    = flag.String("url", "http://localhost:8440/widgets/uptime", "widget endpoint URL to fetch.")
	key    = flag.String("key", "", "API key to authorize with.")
	format = flag.String("format", "", "wire format to request; 2 selects object notation, anything else XML markup.")
)

func main() {
	flag.Parse()

	status, body, err := fetch(*url, *key, *format)
	if err != nil {
		slog.Error("failed fetching widget data", "url", *url, "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n%s\n", status, body)
}

func fetch(url, key, format string) (status string, body []byte, err error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed creating request: %w", err)
	}
	if key != "" {
		cred := base64.StdEncoding.EncodeToString([]byte(key + ":"))
		req.Header.Set("Authorization", "Basic "+cred)
	}
	if format != "" {
		q := req.URL.Query()
		q.Set("format", format)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("failed performing request: %w", err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed reading response body: %w", err)
	}

	return resp.Status, body, nil
}
