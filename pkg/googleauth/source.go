package googleauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoCredentials is returned when neither an inline blob nor a file path is configured.
var ErrNoCredentials = errors.New("no google credentials configured")

// Source is the single resolved credential source for all Google API clients.
// Precedence is fixed: inline JSON beats a credentials file path. Resolved once
// at startup; nothing re-reads the environment afterwards.
type Source struct {
	credentials []byte
	origin      string
}

// Resolve picks the credential source from the configured inputs.
func Resolve(inlineJSON, credentialsPath string) (Source, error) {
	if inlineJSON != "" {
		if !json.Valid([]byte(inlineJSON)) {
			return Source{}, fmt.Errorf("inline google credentials are not valid JSON")
		}
		return Source{credentials: []byte(inlineJSON), origin: "inline"}, nil
	}

	if credentialsPath != "" {
		data, err := os.ReadFile(credentialsPath)
		if err != nil {
			return Source{}, fmt.Errorf("failed to read credentials file: %w", err)
		}
		if !json.Valid(data) {
			return Source{}, fmt.Errorf("credentials file %s is not valid JSON", credentialsPath)
		}
		return Source{credentials: data, origin: "file"}, nil
	}

	return Source{}, ErrNoCredentials
}

// JSON returns the raw credential bytes.
func (s Source) JSON() []byte {
	return s.credentials
}

// Origin reports where the credentials came from ("inline" or "file").
func (s Source) Origin() string {
	return s.origin
}

// IsZero reports whether no credentials were resolved.
func (s Source) IsZero() bool {
	return len(s.credentials) == 0
}
