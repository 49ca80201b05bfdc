package wordlist

// Normalize uppercases an ASCII-letter token. The second result is false as
// soon as a byte outside A-Z/a-z is found, in which case the token is
// returned unchanged.
func Normalize(token string) (string, bool) {
	if token == "" {
		return token, false
	}
	out := make([]byte, len(token))
	for i := 0; i < len(token); i++ {
		ch := token[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			out[i] = ch
		case ch >= 'a' && ch <= 'z':
			out[i] = ch - 'a' + 'A'
		default:
			return token, false
		}
	}
	return string(out), true
}
