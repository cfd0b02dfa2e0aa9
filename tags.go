// SPDX-License-Identifier: EPL-2.0

package ears

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dhowden/tag"
)

// Tags holds the textual metadata of an audio file. Fields that are not
// present in the file are empty strings.
type Tags struct {
	Title       string
	Copyright   string
	Software    string
	Artist      string
	Comment     string
	Date        string
	Album       string
	License     string
	TrackNumber string
	Genre       string
}

// ReadTags reads the metadata of the file at path. A file without a tag
// block yields the zero Tags and a nil error.
func ReadTags(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, fmt.Errorf("open tag file: %w", err)
	}
	defer f.Close()

	return ReadTagsFrom(f)
}

// ReadTagsFrom reads metadata from r, which must be positioned at the
// start of the file.
func ReadTagsFrom(r io.ReadSeeker) (Tags, error) {
	m, err := tag.ReadFrom(r)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return Tags{}, nil
		}
		return Tags{}, fmt.Errorf("read tags: %w", err)
	}

	t := Tags{
		Title:   m.Title(),
		Artist:  m.Artist(),
		Album:   m.Album(),
		Genre:   m.Genre(),
		Comment: m.Comment(),
	}

	if year := m.Year(); year > 0 {
		t.Date = strconv.Itoa(year)
	}

	if n, _ := m.Track(); n > 0 {
		t.TrackNumber = strconv.Itoa(n)
	}

	// Fields without a dedicated accessor come from the raw frame map,
	// keyed per container (ID3v2, vorbis comments, MP4 atoms).
	raw := m.Raw()
	t.Copyright = rawTag(raw, "TCOP", "COPYRIGHT", "cprt")
	t.Software = rawTag(raw, "TSSE", "ENCODER", "\xa9too")
	t.License = rawTag(raw, "WCOP", "LICENSE")

	return t, nil
}

func rawTag(raw map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}
