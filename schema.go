package sifprep

// Schema is an ordered mapping from column names to positions
// within a Row. It allows one to obtain positions by name,
// define new columns, move columns, remove columns, etc.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	GetOffset(colName string) (offset Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string) (newSchema Schema, err error)
	InsertColumn(colName string, pos int) (newSchema Schema, err error)
	MoveColumn(colName string, pos int) (newSchema Schema, err error)
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	RemoveColumn(colName string) (newSchema Schema, wasRemoved bool)
	ColumnNames() []string
	ForEachColumn(fn func(name string, col Column) error) error
}
