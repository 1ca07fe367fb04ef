package payloads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNoSource is returned when a request supplies neither a document
// URL nor pasted document text.
var ErrNoSource = errors.New("provide a specification url or document")

// loadDocument returns the raw specification bytes, fetching by URL
// when one is given and falling back to the pasted text otherwise.
func loadDocument(ctx context.Context, opts Options, specURL, document string) ([]byte, error) {
	specURL = strings.TrimSpace(specURL)
	if specURL != "" {
		return fetchDocument(ctx, opts, specURL)
	}
	if strings.TrimSpace(document) != "" {
		return []byte(document), nil
	}
	return nil, ErrNoSource
}

func fetchDocument(ctx context.Context, opts Options, specURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, specURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch specification: %w", err)
	}

	res, err := opts.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch specification: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("fetch specification: unexpected status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, opts.MaxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("fetch specification: %w", err)
	}
	if int64(len(raw)) > opts.MaxDocumentBytes {
		return nil, fmt.Errorf("fetch specification: document exceeds %d bytes", opts.MaxDocumentBytes)
	}
	return raw, nil
}
