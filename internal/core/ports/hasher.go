package ports

// Hasher computes content digests.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the hash of a file's content.
	ComputeFileHash(path string) (uint64, error)
	// ComputeDigest computes a hex digest over salt strings and the given files.
	ComputeDigest(files []string, salt ...string) (string, error)
}
