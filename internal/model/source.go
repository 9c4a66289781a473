package model

// Path represents a file system path.
type Path string

// Source represents a C source file selected for analysis.
type Source struct {
	// Hash is a stable fingerprint of the file content at scan time.
	Hash string `json:"hash"`
	// Origin is the location the file was loaded from.
	Origin Path `json:"origin"`
}
