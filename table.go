package sifprep

// A Table is an ordered sequence of Rows which all share a
// single Schema. Tables are held fully in memory.
type Table interface {
	GetSchema() Schema                       // GetSchema returns the Schema of a Table
	NumRows() int                            // NumRows returns the number of data rows in a Table (excluding any header)
	GetRow(rowNum int) Row                   // GetRow retrieves a specific Row from a Table
	ForEachRow(fn MapOperation) error        // ForEachRow iterates over the Rows of a Table, in order
	Column(colName string) ([]string, error) // Column returns a copy of every value in a column, in row order
	Records() [][]string                     // Records returns a copy of every Row's values, in row order
	To(...TableOperation) (Table, error)     // To is a "functional operations" factory method for Tables, chaining operations onto the current one.
}
