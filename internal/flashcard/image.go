package flashcard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/callummcdougall/jupyter-to-anki/internal/helpers"
)

var reImage = regexp.MustCompile(`!\[(.*?)\]`)

// ErrMissingAttachment is returned when an image references an unknown attachment.
var ErrMissingAttachment = errors.New("missing attachment")

// Attachments are the images embedded in a notebook cell.
// Ex: {"image.png": {"image/png": "iVBORw0KGgo..."}}
type Attachments map[string]map[string]string

// Names returns the sorted attachment names.
func (a Attachments) Names() []string {
	var names []string
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Payload returns the base64-encoded content of an attachment.
// Only the first value is considered when several representations exist (in key order).
func (a Attachments) Payload(name string) (string, bool) {
	representations, ok := a[name]
	if !ok || len(representations) == 0 {
		return "", false
	}
	var keys []string
	for key := range representations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return representations[keys[0]], true
}

// MediaStore persists media files.
type MediaStore interface {
	PutObject(key string, data []byte) error
}

// MediaFilename returns the name of the media file for an attachment.
// The name is derived from the encoded payload so that the same image is always saved under the same name.
func MediaFilename(name, payload string) string {
	extension := "jpg"
	if strings.HasSuffix(name, ".gif") {
		extension = "gif"
	}
	return helpers.HashString(payload) + "." + extension
}

// RenderImages converts a line containing image references (ex: ![image.png](attachment:image.png))
// into <img> elements after saving the images in the media store.
// Any other text on the line is discarded.
func RenderImages(line string, attachments Attachments, store MediaStore) (string, error) {
	var sb strings.Builder
	for _, match := range reImage.FindAllStringSubmatch(line, -1) {
		name := match[1]
		payload, ok := attachments.Payload(name)
		if !ok {
			return "", fmt.Errorf("%w: image %q not found in attachments %q (try to re-upload the image into the cell)", ErrMissingAttachment, name, attachments.Names())
		}
		data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(payload), ""))
		if err != nil {
			return "", fmt.Errorf("invalid payload for image %q: %w", name, err)
		}
		filename := MediaFilename(name, payload)
		if err := store.PutObject(filename, data); err != nil {
			return "", fmt.Errorf("unable to save image %q: %w", name, err)
		}
		sb.WriteString(fmt.Sprintf("<img src='%s'>", filename))
	}
	return sb.String(), nil
}
