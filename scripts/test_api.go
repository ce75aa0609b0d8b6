//go:build ignore
// +build ignore

// Ручная проверка API: поднимите сервис и запустите
//
//	go run scripts/test_api.go -base http://localhost:8080
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

func main() {
	base := flag.String("base", "http://localhost:8080", "base URL of the running API")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	checks := []struct {
		method string
		path   string
		body   string
	}{
		{"GET", "/api/health", ""},
		{"POST", "/api/load-sample-data", `{"sample_size": 500}`},
		{"GET", "/api/parking-signs?lat=40.7589&lon=-73.9851&radius=200", ""},
		{"GET", "/api/meter-rate?lat=40.7589&lon=-73.9851", ""},
		{"GET", "/api/violation-trends?borough=MANHATTAN", ""},
		{"GET", "/api/violations?lat=40.7589&lon=-73.9851&radius=2000&limit=5", ""},
		{"GET", "/api/data-status", ""},
		{"GET", "/api/debug/test-nyc-api", ""},
		// Ошибочные запросы: должны вернуть 400 с телом ошибки
		{"GET", "/api/parking-signs?lat=abc&lon=-73.9851", ""},
		{"GET", "/api/parking-signs?lat=34.05&lon=-118.24", ""},
	}

	for _, c := range checks {
		var req *http.Request
		var err error
		if c.body != "" {
			req, err = http.NewRequest(c.method, *base+c.path, strings.NewReader(c.body))
			if err == nil {
				req.Header.Set("Content-Type", "application/json")
			}
		} else {
			req, err = http.NewRequest(c.method, *base+c.path, nil)
		}
		if err != nil {
			log.Fatalf("build request %s: %v", c.path, err)
		}

		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("%s %s: %v", c.method, c.path, err)
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		preview := string(body)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		fmt.Printf("%-4s %-60s -> %d\n     %s\n\n", c.method, c.path, resp.StatusCode, preview)
	}
}
