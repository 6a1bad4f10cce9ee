package utils

import "strings" // String manipulation

// Image payload markers
const (
	dataURIPrefix      = "data:image"             // Transport prefix for any declared MIME type
	base64Marker       = "base64,"                // Separator between the prefix and the payload
	defaultImagePrefix = "data:image/jpeg;base64," // Prefix restored on decode, always jpeg
)

// EncodeImage converts a transport image string to its storage form: a
// data-URI input is stripped down to the bare base64 payload, anything
// else is treated as already bare and returned unchanged.
func EncodeImage(image string) string {
	if !strings.HasPrefix(image, dataURIPrefix) {
		return image // Already bare
	}
	if idx := strings.Index(image, base64Marker); idx != -1 {
		return image[idx+len(base64Marker):] // Keep only the encoded payload
	}
	return image // Prefixed but no payload marker, store as-is
}

// DecodeImage converts a stored image string back to its transport form by
// prepending the default jpeg data-URI prefix when none is present. The
// original MIME type is not stored, so every bare payload decodes as jpeg:
// decode(encode(x)) is jpeg-prefixed no matter what x declared.
func DecodeImage(stored string) string {
	if stored == "" {
		return "" // Empty rows are filtered by the caller
	}
	if strings.HasPrefix(stored, dataURIPrefix) {
		return stored // Already a data URI
	}
	return defaultImagePrefix + stored
}
