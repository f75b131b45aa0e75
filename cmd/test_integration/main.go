package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const sampleText = "Inflation erodes purchasing power. Central banks raise interest rates to fight inflation, which slows investment and employment."

func main() {
	baseURL := os.Getenv("SERVER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	client := &http.Client{Timeout: 2 * time.Minute}

	fmt.Println("1. Health check...")
	resp, err := client.Get(baseURL + "/healthz")
	if err != nil || resp.StatusCode != http.StatusOK {
		fmt.Printf("FAILED: health check: %v\n", describe(resp, err))
		os.Exit(1)
	}
	resp.Body.Close()

	fmt.Println("2. Extracting graph...")
	payload, _ := json.Marshal(map[string]string{"text": sampleText})
	resp, err = client.Post(baseURL+"/extract", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("FAILED: extract: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		ID    string            `json:"id"`
		Nodes []json.RawMessage `json:"nodes"`
		Edges []json.RawMessage `json:"edges"`
		Error string            `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		fmt.Printf("FAILED: decode response: %v\n%s\n", err, body)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("FAILED: status %d: %s\n", resp.StatusCode, out.Error)
		os.Exit(1)
	}

	fmt.Printf("SUCCESS: extraction %s returned %d nodes and %d edges\n", out.ID, len(out.Nodes), len(out.Edges))
}

func describe(resp *http.Response, err error) string {
	if err != nil {
		return err.Error()
	}
	return resp.Status
}
