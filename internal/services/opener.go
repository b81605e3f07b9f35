package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// SchemeOpener is the default LinkOpener: it accepts a deep link when its
// scheme is in the configured allow list, standing in for the device-side
// check of whether the target app is installed.
type SchemeOpener struct {
	schemes map[string]bool
}

// NewSchemeOpener creates an opener allowing the given URI schemes.
func NewSchemeOpener(schemes []string) *SchemeOpener {
	allowed := make(map[string]bool, len(schemes))
	for _, s := range schemes {
		allowed[strings.ToLower(s)] = true
	}
	return &SchemeOpener{schemes: allowed}
}

// Open reports whether the link's scheme is supported.
func (o *SchemeOpener) Open(rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("invalid link: %w", err)
	}
	if u.Scheme == "" {
		return false, fmt.Errorf("link %q has no scheme", rawURL)
	}

	if !o.schemes[strings.ToLower(u.Scheme)] {
		return false, nil
	}

	log.Info().Str("url", rawURL).Msg("Deep link opened")
	return true, nil
}
