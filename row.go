package sifprep

// A Row is a single record of a Table, addressed by column name
type Row interface {
	Schema() Schema                         // Schema returns the Schema of the Table this Row belongs to
	Get(colName string) (string, error)     // Get returns the value of a column
	Set(colName string, value string) error // Set replaces the value of a column
	Values() []string                       // Values returns a copy of this Row's values, in Schema order
	ToString() string                       // ToString returns a string representation of this Row, for logging
}
