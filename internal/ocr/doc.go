// Package ocr extracts text and UI vocabulary terms from sampled frames.
//
// Recognition itself is delegated to an external tesseract binary behind the
// Engine interface; frames are Otsu-binarized before recognition. The fixed
// vocabulary tables (action controls, form fields, navigation elements) are
// immutable rule configuration owned by the extractor and injectable for
// tests.
package ocr
