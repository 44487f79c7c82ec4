package email

import "strings"

// Normalize lowercases and trims an address so the same mailbox always maps
// to the same store key. Uniqueness checks and lookups must go through this.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// IsValid applies the minimal shape check the signup form relies on. Full
// RFC 5322 validation is deliberately out of scope; deliverability is proven
// by use, not by parsing.
func IsValid(address string) bool {
	at := strings.IndexByte(address, '@')
	if at <= 0 || at == len(address)-1 {
		return false
	}
	domain := address[at+1:]
	if strings.IndexByte(domain, '@') != -1 {
		return false
	}
	return strings.IndexByte(domain, '.') > 0
}
