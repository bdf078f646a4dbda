package sifprep

// TableOperation - A generic Table transform, producing a new Table. The input Table is never modified.
type TableOperation func(t Table) (Table, error)

// MapOperation - A generic function for manipulating Rows in-place. rowNum is the position of the Row within its Table.
type MapOperation func(rowNum int, row Row) error
