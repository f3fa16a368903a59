package medias

import "strings"

// Images saved from notebooks are either JPEG or GIF files
// but attachments can be any common web image format.
var mimeTypes = map[string]string{
	// See https://developer.mozilla.org/en-US/docs/Web/HTTP/Basics_of_HTTP/MIME_types/Common_types
	".avif": "image/avif",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
	".ico":  "image/vnd.microsoft.icon",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
}

// MimeType returns the mime type for common image extensions.
func MimeType(extension string) string {
	mime, ok := mimeTypes[strings.ToLower(extension)]
	if !ok {
		// RFC 2046 declares:
		// The "octet-stream" subtype is used to indicate that a body contains arbitrary binary data.
		return "application/octet-stream"
	}
	return mime
}

// IsImage returns if the extension is a known image format.
func IsImage(extension string) bool {
	_, ok := mimeTypes[strings.ToLower(extension)]
	return ok
}
