// Package normalize holds the per-field cleanup transforms applied to
// raw archival export values. Every transform is total: malformed or
// ambiguous input yields an absent result instead of an error, because
// a wrong published value costs more than a missing one.
package normalize
