package models

// Token is the opaque session credential issued by the server on a
// successful login. The client never inspects its contents; it is stored as
// received and replayed verbatim in the Authorization header.
type Token string

// IsEmpty reports whether the token is absent.
func (t Token) IsEmpty() bool {
	return t == ""
}

// String implements [fmt.Stringer]. The token value is masked so that an
// accidental print or log statement cannot leak the credential.
func (t Token) String() string {
	if t.IsEmpty() {
		return ""
	}
	return "[redacted]"
}
