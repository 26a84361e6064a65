package main

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
)

//go:embed tags.json
var tagsData []byte

const (
	summaryText  = "The speaker introduces the topic and walks through the main ideas step by step.\n\nKey insights are illustrated with short examples, and the video closes with a recap of the most important points."
	keywordsText = "introduction, main ideas, examples, key insights, recap"
)

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func main() {
	http.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(tagsData); err != nil {
			log.Printf("[Mock Ollama] Write error: %v", err)
		}

		log.Printf("[Mock Ollama] %s %s - 200 OK", r.Method, r.URL.Path)
	})

	http.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)

			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request"}`, http.StatusBadRequest)

			return
		}

		// Simulate generation latency (200-700ms)
		time.Sleep(time.Duration(200+time.Now().UnixNano()%500) * time.Millisecond)

		resp := generateResponse{Model: req.Model, Response: summaryText, Done: true}
		if strings.Contains(req.Prompt, "KEYWORDS:") {
			resp.Response = keywordsText
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Printf("[Mock Ollama] Encode error: %v", err)
		}

		log.Printf("[Mock Ollama] %s %s model=%s prompt_chars=%d", r.Method, r.URL.Path, req.Model, len(req.Prompt))
	})

	log.Println("Mock Ollama running on :11434")
	server := &http.Server{
		Addr:         ":11434",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
