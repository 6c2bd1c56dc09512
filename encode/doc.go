// Package encode renders ir trees as JSON text.
//
// The output policy is fixed apart from the documented Options:
// objects span multiple lines with sorted keys and two space indent,
// arrays stay on one line, and numbers use a deterministic
// locale-free decimal form. Byte-for-byte reproduction of parsed
// input is not a goal; structural round-tripping is.
package encode
