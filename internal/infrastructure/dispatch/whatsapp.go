// Package dispatch holds the outbound channels that accept a finished
// invoice payload: a WhatsApp share link builder and a local file exporter.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/DanielPopoola/empire-storefront/internal/application"
)

// WhatsAppSink builds wa.me share links. Opening the link is the client's
// job; the sink only produces the URL.
type WhatsAppSink struct{}

func NewWhatsAppSink() *WhatsAppSink {
	return &WhatsAppSink{}
}

var _ application.ShareLinkSink = (*WhatsAppSink)(nil)

func (s *WhatsAppSink) Share(_ context.Context, destination, payload string) (string, error) {
	if destination == "" {
		return "", errors.New("share destination is required")
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", destination, url.QueryEscape(payload)), nil
}
