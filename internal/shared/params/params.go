// Package params reads typed query parameters, reporting bad input as
// validation errors.
package params

import (
	"net/http"
	"strconv"

	"oasis-server/internal/rarity"
	"oasis-server/internal/shared/errors"
)

// Seed returns nil when the "seed" parameter is absent.
func Seed(r *http.Request) (*uint64, error) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errors.WrapValidation("seed must be an unsigned integer", err)
	}
	return &seed, nil
}

func Int(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapValidation(key+" must be an integer", err)
	}
	return n, nil
}

func Bool(r *http.Request, key string) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.WrapValidation(key+" must be a boolean", err)
	}
	return b, nil
}

// Rarity returns nil when the "rarity" parameter is absent. Labels are
// matched loosely, so "very_rare" and "Very Rare" are the same tier.
func Rarity(r *http.Request) (*rarity.Rarity, error) {
	raw := r.URL.Query().Get("rarity")
	if raw == "" {
		return nil, nil
	}
	var tier rarity.Rarity
	if err := tier.UnmarshalText([]byte(raw)); err != nil {
		return nil, errors.WrapValidation("rarity must be a rarity label such as \"Rare\"", err)
	}
	return &tier, nil
}
