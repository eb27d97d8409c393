package modref

import (
	"log"
	"regexp"

	"github.com/qrthey/tf-sources-updater/internal/semtag"
)

var (
	// quotedSourcePattern finds quoted, whitespace-free strings that
	// mention the GitHub host at all. Whether such a candidate really
	// is a tagged git module source is decided by sourcePattern below.
	quotedSourcePattern = regexp.MustCompile(`"[^"\s]*github\.com[^"\s]*"`)

	// sourcePattern splits a candidate into owner, repository name and
	// the pinned ref value. The scheme, any path around the host, and a
	// //subdirectory selector after the repository identify nothing and
	// are discarded.
	sourcePattern = regexp.MustCompile(`github\.com[:/]([^/:?"]+)/([^/:?"]+)\.git(?://[^?"]*)?\?ref=([^"&]+)`)
)

// ExtractReferences scans configuration text for quoted module source
// strings that pin a GitHub repository to a tag. Candidates that
// mention the host but do not fit the source grammar are not module
// references and are skipped. Identical quoted strings within one file
// collapse to a single reference; output preserves the document order
// of first occurrence.
func ExtractReferences(fileText string) []Reference {
	var refs []Reference
	seen := make(map[string]struct{})

	for _, quoted := range quotedSourcePattern.FindAllString(fileText, -1) {
		if _, ok := seen[quoted]; ok {
			continue
		}
		seen[quoted] = struct{}{}

		parts := sourcePattern.FindStringSubmatch(quoted)
		if parts == nil {
			log.Printf("[DEBUG] modref: quoted string mentions github.com but is not a tagged module source: %s", quoted)
			continue
		}

		tag, err := semtag.Parse(parts[3])
		if err != nil {
			log.Printf("[WARN] modref: skipping module source %s: %s", quoted, err)
			continue
		}

		refs = append(refs, Reference{
			OriginalText: quoted,
			Owner:        parts[1],
			Repo:         parts[2],
			Tag:          tag,
		})
	}

	return refs
}
