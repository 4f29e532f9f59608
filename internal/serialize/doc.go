// Package serialize converts between a document's page list and the
// single string value shared with the host application.
//
// Page contents are joined with a reserved comment-style sentinel.
// The round-trip law holds for arbitrary content: any sentinel-shaped
// substring inside page content is escaped on serialize and unescaped
// on deserialize, so splitting the serialized value on the sentinel
// reproduces exactly the original page contents.
package serialize
