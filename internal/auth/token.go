package auth

import "strings"

// ExtractToken parses an Authorization header value. Both the regular
// Bearer scheme and the single-use Token scheme are recognized.
func ExtractToken(header string) (string, Scheme, bool) {
	for _, scheme := range []Scheme{SchemeBearer, SchemeToken} {
		prefix := string(scheme) + " "
		if strings.HasPrefix(header, prefix) {
			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				return "", scheme, false
			}
			return token, scheme, true
		}
	}
	return "", "", false
}
