// Package proofkit validates a file by hashing its content and returns a
// record the host application can display next to the file.
//
// Validation streams the file through a digest (SHA-256 by default) in
// fixed-size chunks and never fails across its boundary: open and read
// errors are returned as data inside the [Result].
//
// # Basic Usage
//
//	v, err := proofkit.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	switch r := v.Validate("/photos/evidence.jpg").(type) {
//	case *proofkit.Verified:
//	    fmt.Println("sha256:", r.Hash)
//	case *proofkit.Failed:
//	    fmt.Println(r.Err)
//	}
//
// # Wire Record
//
// [Result.Record] converts either shape into the record expected by the
// host:
//
//	{"valid":true,"hash":"e3b0c4...","timestamp":null,"gps":null,"error":null}
//	{"valid":false,"hash":"","timestamp":null,"gps":null,"error":"Failed to open file: ..."}
//
// # Configuration
//
// [GetConfig] reads the BEAVER_PROOFKIT_* environment variables:
//
//	BEAVER_PROOFKIT_ALGORITHM=sha256
//	BEAVER_PROOFKIT_CHUNK_SIZE=32768
//	BEAVER_PROOFKIT_LOG_LEVEL=info
//	BEAVER_PROOFKIT_LOG_FORMAT=text
//	BEAVER_PROOFKIT_WATCH_DEBOUNCE_MS=100
//
// Use [WithPrefix] to read them under a different prefix.
//
// # Metadata
//
// The timestamp and gps fields are filled by a [MetadataExtractor]. The
// default, [NoMetadata], leaves both empty.
package proofkit
