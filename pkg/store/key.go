package store

import "strings"

// Separator joins the section and key halves of a setting address.
const Separator = ":"

// SplitKey validates and splits a "Section:Key" address. Anything other
// than exactly two non-empty parts is rejected before any store work
// happens.
func SplitKey(key string) (section, name string, err error) {
	parts := strings.Split(key, Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrMalformedKey.WithDetail("key", key)
	}
	return parts[0], parts[1], nil
}

// JoinKey is the inverse of SplitKey.
func JoinKey(section, name string) string {
	return section + Separator + name
}
