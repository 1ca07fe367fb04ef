package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-datagen/internal/openapi/parser"
	"github.com/goliatone/go-datagen/pkg/rng"
	"github.com/goliatone/go-datagen/pkg/sampler"
)

func main() {
	source := flag.String("source", "", "specification document path or URL")
	operation := flag.String("operation", "", `operation to sample, e.g. "POST /pets" (prompts if empty)`)
	seed := flag.Int64("seed", 0, "deterministic seed (current time if zero)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	raw, err := readSource(ctx, *source)
	if err != nil {
		log.Fatalf("read source: %v", err)
	}

	doc, err := parser.Parse(ctx, raw)
	if err != nil {
		log.Fatalf("parse document: %v", err)
	}

	ops := doc.Operations()
	if len(ops) == 0 {
		log.Fatalf("%v", parser.ErrNoOperations)
	}

	opID := strings.TrimSpace(*operation)
	if opID == "" {
		opID, err = pickOperation(ops)
		if err != nil {
			log.Fatalf("select operation: %v", err)
		}
	}

	op, err := doc.FindOperation(opID)
	if err != nil {
		log.Fatalf("%v", err)
	}

	schema, err := doc.RequestBodySchema(op)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixMilli()
	}

	payload := sampler.New(doc.Root, rng.New(uint32(*seed))).Sample(schema)

	rendered, err := json.MarshalIndent(map[string]any{
		"operation": op.ID,
		"seed":      *seed,
		"payload":   payload,
	}, "", "  ")
	if err != nil {
		log.Fatalf("encode payload: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, append(rendered, '\n'), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Payload written to %s\n", *output)
		return
	}
	fmt.Println(string(rendered))
}

func pickOperation(ops []parser.Operation) (string, error) {
	ids := make([]string, 0, len(ops))
	for _, op := range ops {
		ids = append(ids, op.ID)
	}

	var out string
	prompt := &survey.Select{
		Message:  "Operation:",
		Options:  ids,
		PageSize: 12,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}

func readSource(ctx context.Context, raw string) ([]byte, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, fmt.Errorf("provide -source with a file path or URL")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return fetchSource(ctx, path)
	}
	return os.ReadFile(path)
}

func fetchSource(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 15 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	return io.ReadAll(res.Body)
}
