// Package textutil provides small text helpers shared by the OCR extractor
// and the spec comparator.
//
// The primary use cases are:
//   - Normalizing whitespace in raw OCR output
//   - Case-insensitive substring and membership checks used by the
//     transition classifier and flow matcher
package textutil
