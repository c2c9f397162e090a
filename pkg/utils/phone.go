package utils

// MinPhoneDigits is the minimum accepted phone number length.
const MinPhoneDigits = 10

// NormalizePhone strips everything that is not an ASCII digit, matching the
// admin form's input filtering.
func NormalizePhone(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// ValidPhone reports whether a normalized phone number is long enough.
func ValidPhone(s string) bool {
	return len(NormalizePhone(s)) >= MinPhoneDigits
}
