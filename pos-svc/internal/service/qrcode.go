package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a restaurant's public ordering page, the URL
// printed on table cards.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) URL(slug string) string {
	return fmt.Sprintf("%s/r/%s", strings.TrimRight(g.BaseURL, "/"), url.PathEscape(slug))
}

func (g DefaultQRGenerator) Generate(slug string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.URL(slug), qrcode.Medium, size)
}
