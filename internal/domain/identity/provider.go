package identity

import "fmt"

// ProviderKind is the authentication method an auth provider record stands for.
type ProviderKind string

const (
	ProviderLocal  ProviderKind = "local"
	ProviderGoogle ProviderKind = "google"
)

func (k ProviderKind) Valid() bool {
	return k == ProviderLocal || k == ProviderGoogle
}

func ParseProviderKind(raw string) (ProviderKind, error) {
	k := ProviderKind(raw)
	if !k.Valid() {
		return "", fmt.Errorf("unknown auth provider %q", raw)
	}
	return k, nil
}
