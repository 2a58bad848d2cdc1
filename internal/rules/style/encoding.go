package style

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// EncodingCompatible reports whether a source file declaring encoding name
// can be rewritten with UTF-8 literals. An empty name means the default
// source encoding, which is UTF-8.
func EncodingCompatible(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range []string{"-unix", "-dos", "-mac"} {
		n = strings.TrimSuffix(n, suffix)
	}

	switch n {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return true
	}

	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return false
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		return false
	}
	return canonical == "UTF-8" || canonical == "US-ASCII"
}
