// Package model defines the data structures for batch extension renaming.
package model

// Path represents a file system path.
type Path string
