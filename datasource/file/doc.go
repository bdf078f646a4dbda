// Package file provides a DataSource which reads Tables from delimited files, and a
// DataSink which writes them. Both operate on an afero.Fs, so that callers may
// substitute an in-memory file system. Files whose names end in .lz4 or .zst are
// transparently decompressed on read, and compressed with the same codec on write.
package file
