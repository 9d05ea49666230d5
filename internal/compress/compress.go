package compress

// Compress encodes and decodes archive blobs. The codec name is stored on
// the archive row so blobs written with one codec stay readable after the
// default changes.
type Compress interface {
	Name() string
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

// ByName returns the codec registered under name. Unknown or empty names
// fall back to the no-op codec.
func ByName(name string) Compress {
	switch name {
	case "gzip":
		return NewGZip()
	case "br":
		return NewBrotli()
	case "lz4":
		return NewLZ4()
	default:
		return NewNop()
	}
}
