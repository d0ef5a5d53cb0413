package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/putraaxzy/Artemis-PKL/config"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// ── tipe wire API generateContent ──

// Part satu potongan isi pesan
type Part struct {
	Text string `json:"text"`
}

// Content satu giliran percakapan
type Content struct {
	Role  string `json:"role"` // "user" | "model"
	Parts []Part `json:"parts"`
}

// NewContent membentuk satu giliran berisi teks
func NewContent(role, text string) Content {
	return Content{Role: role, Parts: []Part{{Text: text}}}
}

// Chatter antarmuka pengiriman percakapan ke model generatif.
// history adalah giliran pembuka (persona + ack), message giliran user terakhir.
type Chatter interface {
	SendChat(ctx context.Context, history []Content, message string) (string, error)
}

// Client klien REST Gemini generateContent
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient membuat klien Gemini; timeout diterapkan di level http.Client
func NewClient(cfg *config.GeminiConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// SendChat mengirim seluruh percakapan (history + pesan user) sekali jalan
// dan mengembalikan teks mentah kandidat pertama.
func (c *Client) SendChat(ctx context.Context, history []Content, message string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini: api key belum dikonfigurasi")
	}

	contents := make([]Content, 0, len(history)+1)
	contents = append(contents, history...)
	contents = append(contents, NewContent("user", message))

	reqBody := generateRequest{
		Contents: contents,
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 2048,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request gagal: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: gagal membaca respons: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: status %d: %s", resp.StatusCode, body)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("gemini: respons tidak valid: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: respons kosong")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
