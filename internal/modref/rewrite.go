package modref

import (
	"strings"

	"github.com/qrthey/tf-sources-updater/internal/semtag"
)

const refMarker = "ref="

// Rewrite produces updated file text with each reference's tag
// substring swapped for the tag the resolve callback returns for it.
// References the callback declines stay untouched. The second return
// value reports whether the result differs from the input at all; when
// every resolved tag equals the current one the output is
// byte-identical, so callers can skip persisting the file.
func Rewrite(fileText string, refs []Reference, resolve func(ref Reference) (semtag.Tag, bool)) (string, bool) {
	out := fileText
	for _, ref := range refs {
		replacement, ok := resolve(ref)
		if !ok || replacement.Raw == ref.Tag.Raw {
			continue
		}

		// The tag value follows the last ref= marker in the source
		// string; replacing there cannot touch an owner or repository
		// name that happens to look like a version.
		idx := strings.LastIndex(ref.OriginalText, refMarker+ref.Tag.Raw)
		if idx < 0 {
			continue
		}
		updated := ref.OriginalText[:idx+len(refMarker)] +
			replacement.Raw +
			ref.OriginalText[idx+len(refMarker)+len(ref.Tag.Raw):]

		out = strings.ReplaceAll(out, ref.OriginalText, updated)
	}
	return out, out != fileText
}
