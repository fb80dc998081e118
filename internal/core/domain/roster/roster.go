/*
Package roster defines the entries read from a roster file.
*/
package roster

// Entry places one employee in one department.
type Entry struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
}
