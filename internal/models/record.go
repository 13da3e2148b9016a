package models

// Record is one row of the editorial table and of the CSV exchange file.
// The identity column is assigned by the database and never read back.
type Record struct {
	Name  string
	Email string
}
