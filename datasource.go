package sifprep

// DataSource is a source of Tables, addressed by name (e.g. a file path).
type DataSource interface {
	Exists(name string) (bool, error) // Exists returns true iff a Table with the given name can be loaded
	Load(name string) (Table, error)  // Load reads the named Table fully into memory
}

// An Output pairs a Table with the name it should be persisted under
type Output struct {
	Name  string
	Table Table
}

// WriteResult describes a successfully persisted Output
type WriteResult struct {
	Name     string // Name is the final name (e.g. path) of the written data
	Rows     int    // Rows is the number of data rows written
	Bytes    int    // Bytes is the number of bytes written, after any compression
	Checksum uint64 // Checksum is a hash of the written bytes
}

// DataSink persists Tables. A DataSink never leaves partial output behind:
// WriteAll either persists every Output, or none of them.
type DataSink interface {
	WriteAll(outputs ...Output) ([]*WriteResult, error)
}
