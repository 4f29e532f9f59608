// Package printer produces standalone printable output from a page
// list.
//
// The printable document lays every page out at exactly the pixel
// dimensions, margins, and reservations of the live editing geometry,
// separated by hard page breaks and decorated with page numbers. All
// user content passes through a sanitization policy that strips
// executable constructs while keeping the allowed formatting
// vocabulary.
//
// PDF export delegates to a headless Chrome rendering target; if that
// target cannot be created or driven, the error is returned to the
// caller with no retry.
package printer
