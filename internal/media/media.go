// Package media stores meal images with an external image host.
package media

import (
	"context"
	"errors"
	"io"
	"net/url"
	"path"
	"strings"
)

var ErrNotConfigured = errors.New("image uploads are not configured")

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

// Disabled is used when no image host is configured. Meals can still be
// created with an image URL supplied by the admin.
type Disabled struct{}

func (Disabled) Upload(context.Context, io.Reader, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) error {
	return ErrNotConfigured
}

// PublicIDFromURL extracts the asset id from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1740815725/meals/abc.png
// which yields "meals/abc".
func PublicIDFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", err
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part != "upload" {
			continue
		}
		rest := parts[i+1:]
		if len(rest) > 0 && isVersion(rest[0]) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			break
		}
		id := strings.Join(rest, "/")
		return strings.TrimSuffix(id, path.Ext(id)), nil
	}
	return "", errors.New("no public id in image url")
}

func isVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
