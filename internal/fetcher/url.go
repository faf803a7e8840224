package fetcher

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
)

// ValidateURL reports ErrInvalidURL unless raw is an http(s) URL whose host
// ends with one of allowedHosts.
func ValidateURL(raw string, allowedHosts []string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}

	host := strings.ToLower(u.Hostname())
	for _, allowed := range allowedHosts {
		allowed = strings.ToLower(allowed)
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
}

// VideoID extracts the id from watch?v=, youtu.be/, /shorts/ and /embed/ URLs.
func VideoID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return model.Unknown
	}

	if v := u.Query().Get("v"); v != "" {
		return v
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if strings.HasSuffix(strings.ToLower(u.Hostname()), "youtu.be") && parts[0] != "" {
		return parts[0]
	}
	if len(parts) == 2 && (parts[0] == "shorts" || parts[0] == "embed" || parts[0] == "live") {
		return parts[1]
	}

	return model.Unknown
}
