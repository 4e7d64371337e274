package utils

import (
	"encoding/json"
	"errors"
	"strings"
)

// ImageList accepts either a JSON array of URLs or one comma-separated string.
// Entries are trimmed and blanks dropped.
type ImageList []string

func (l *ImageList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var raw []string
	var joined string
	switch {
	case json.Unmarshal(data, &raw) == nil:
	case json.Unmarshal(data, &joined) == nil:
		raw = strings.Split(joined, ",")
	default:
		return errors.New("images must be an array of URLs or a comma-separated string")
	}

	*l = NormalizeImageURLs(raw)
	return nil
}

func NormalizeImageURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
