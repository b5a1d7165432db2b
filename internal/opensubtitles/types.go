// Package opensubtitles provides an XML-RPC client for the OpenSubtitles
// movie-hash fingerprint database.
package opensubtitles

// HashCandidate is one catalog entry associated with a media hash. Several
// unrelated files of the same byte-length class can share a hash, so a
// single hash may map to multiple candidates.
type HashCandidate struct {
	Kind    string // "movie" or "episode"
	Name    string // display name; episodes use `"Show Name" Episode Title`
	Year    int
	Season  int    // episodes only
	Episode int    // episodes only
	IMDbID  string // numeric catalog id, no "tt" prefix
}

// HashEntry is a fingerprint submission for a newly resolved file.
type HashEntry struct {
	Hash       string
	SizeBytes  int64
	IMDbID     string // numeric catalog id, no "tt" prefix
	DurationMS float64
	Filename   string
}

// InsertResult reports the outcome of a fingerprint submission.
type InsertResult struct {
	Status   string
	Accepted []string // hashes the service accepted
}

// Accepted reports whether the given hash was accepted by the service.
func (r *InsertResult) AcceptedHash(hash string) bool {
	for _, h := range r.Accepted {
		if h == hash {
			return true
		}
	}
	return false
}
