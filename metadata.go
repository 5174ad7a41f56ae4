package proofkit

import (
	"io/fs"
)

// Metadata holds fields embedded in the file content. Formats are not
// defined yet, so both stay opaque strings.
type Metadata struct {
	// Timestamp is the capture or modification time, if known.
	Timestamp *string

	// GPS is the embedded location, if known.
	GPS *string
}

// MetadataExtractor reads embedded metadata from an opened file.
//
// Extract is called after the content has been hashed. Its result never
// changes the validity or the hash of a file; an error is logged and the
// metadata fields are left empty.
type MetadataExtractor interface {
	Extract(path string, info fs.FileInfo) (Metadata, error)
}

// MetadataExtractorFunc adapts a function to MetadataExtractor.
type MetadataExtractorFunc func(path string, info fs.FileInfo) (Metadata, error)

// Extract implements MetadataExtractor
func (f MetadataExtractorFunc) Extract(path string, info fs.FileInfo) (Metadata, error) {
	return f(path, info)
}

// NoMetadata is the default extractor. It reports no fields.
var NoMetadata MetadataExtractor = noMetadata{}

type noMetadata struct{}

func (noMetadata) Extract(string, fs.FileInfo) (Metadata, error) {
	return Metadata{}, nil
}
