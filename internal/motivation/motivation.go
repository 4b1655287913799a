// Package motivation supplies the encouragement messages surfaced every
// fifth miss.
package motivation

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// defaultMessages is the built-in list used when no provider is configured
// or a provider yields nothing.
var defaultMessages = []string{
	"💪 ¡Ánimo! Vas en la dirección correcta.",
	"🌟 Puedes con esto. Una más y lo clavas.",
	"🚀 Los fallos te hacen mejorar. ¡Sigue!",
	"🧠 Repetir = recordar. ¡Buen trabajo!",
	"🔥 No te rindas: cada intento suma.",
	"🏆 Pasito a pasito se llega lejos.",
	"✨ Lo estás haciendo muy bien, ¡continúa!",
}

// DefaultMessages returns a copy of the built-in message list.
func DefaultMessages() []string {
	out := make([]string, len(defaultMessages))
	copy(out, defaultMessages)
	return out
}

// Provider supplies a motivational message list.
type Provider interface {
	Messages(ctx context.Context) ([]string, error)
}

// HTTPProvider fetches a JSON array of messages from a remote endpoint.
type HTTPProvider struct {
	client *resty.Client
	url    string
}

// NewHTTPProvider creates a provider for the given URL.
func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		client: resty.New(),
		url:    url,
	}
}

// Messages fetches the remote list, filtering empty entries. It falls back
// to the built-in list when the request fails or the response is empty, so
// callers always receive a non-empty list.
func (p *HTTPProvider) Messages(ctx context.Context) ([]string, error) {
	var fetched []string
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&fetched).
		Get(p.url)
	if err != nil {
		return DefaultMessages(), fmt.Errorf("fetch motivation messages: %w", err)
	}
	if resp.IsError() {
		return DefaultMessages(), fmt.Errorf("fetch motivation messages: status %s", resp.Status())
	}

	var messages []string
	for _, message := range fetched {
		if message != "" {
			messages = append(messages, message)
		}
	}
	if len(messages) == 0 {
		return DefaultMessages(), nil
	}
	return messages, nil
}
