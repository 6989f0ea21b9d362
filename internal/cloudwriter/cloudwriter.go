// Package cloudwriter abstracts buffered object uploads for export targets.
package cloudwriter

// ObjectWriter buffers bytes and uploads them as one object on Close.
type ObjectWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// WriterFactory creates writers bound to a bucket and object key.
type WriterFactory interface {
	NewWriter(bucket, objectKey string) (ObjectWriter, error)
}
