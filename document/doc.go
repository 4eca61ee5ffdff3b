// Package document holds the read-only text model: rows of grapheme clusters.
//
// Callers address text in grapheme-column space only; byte offsets never leave the package.
package document
