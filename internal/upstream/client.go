// Package upstream est le client HTTP vers le backend e-commerce. Toutes les
// réponses passent par le normaliseur DTO avant de remonter dans le terminal.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnreachable signale un backend injoignable, à distinguer d'un rejet
// métier : l'UI affiche "vérifiez que le backend est lancé".
var ErrUnreachable = errors.New("backend injoignable")

// APIError porte le rejet structuré renvoyé par le backend. Le message est
// restitué tel quel quand il existe.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("le backend a répondu HTTP %d", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New construit le client. Contrairement au terminal d'origine, chaque appel
// porte un timeout : une requête pendue ne doit pas bloquer la caisse.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do exécute une requête JSON et décode la réponse dans out (nil accepté).
// Les échecs réseau sont enveloppés dans ErrUnreachable, les statuts non 2xx
// dans APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: rejectionMessage(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("réponse backend illisible: %w", err)
	}
	return nil
}

// rejectionMessage extrait le message d'un payload d'erreur backend,
// {"message": ...} ou {"error": ...}. Vide si rien d'exploitable.
func rejectionMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
