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

const (
	baseURL = "http://localhost:8080"
)

// Manual end-to-end check against a running server: ingest a small snapshot,
// then read back the graph and ranked paths.
func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	snapshot := map[string]any{
		"nodes": []map[string]any{
			{"id": "d1", "label": "DrugX", "type": "drug"},
			{"id": "p1", "label": "Placebo", "type": "drug"},
			{"id": "dis1", "label": "Colon Cancer", "type": "disease"},
			{"id": "dis2", "label": "Rectal Cancer", "type": "disease"},
			{"id": "e1", "label": "PMID:100", "type": "evidence"},
			{"id": "e2", "label": "PMID:200", "type": "evidence"},
		},
		"edges": []map[string]any{
			{"source": "d1", "target": "dis1", "relationship": "SUPPORTS", "weight": 0.8,
				"metadata": map[string]any{"evidence_id": "e1"}},
			{"source": "d1", "target": "dis2", "relationship": "SUPPORTS", "weight": 0.7,
				"metadata": map[string]any{"evidence_id": "e2"}},
			{"source": "p1", "target": "dis1", "relationship": "TREATS", "weight": 0.5,
				"metadata": map[string]any{"evidence_id": "e1"}},
		},
	}

	fmt.Println("1. Ingesting snapshot...")
	if !sendRequest("POST", "/snapshots", snapshot) {
		fmt.Println("FAILED: Ingest snapshot")
		os.Exit(1)
	}

	fmt.Println("2. Fetching graph...")
	if !sendRequest("GET", "/graph", nil) {
		fmt.Println("FAILED: Fetch graph")
		os.Exit(1)
	}

	fmt.Println("3. Fetching reasoning paths...")
	if !sendRequest("GET", "/paths", nil) {
		fmt.Println("FAILED: Fetch paths")
		os.Exit(1)
	}

	fmt.Println("4. Fetching warnings...")
	if !sendRequest("GET", "/warnings", nil) {
		fmt.Println("FAILED: Fetch warnings")
		os.Exit(1)
	}

	fmt.Println("Integration Test PASSED")
}

func sendRequest(method, path string, payload any) bool {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to marshal payload: %v\n", err)
			return false
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		return false
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	fmt.Printf("   %s %s -> %d: %s\n", method, path, resp.StatusCode, truncate(string(data), 200))

	return resp.StatusCode == http.StatusOK
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
