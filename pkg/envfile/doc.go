// Package envfile provides a line-preserving model of dotenv configuration
// files.
//
// A Document is an ordered sequence of lines. Lines of the form KEY=VALUE are
// entries whose values can be read and rewritten; every other line (comments,
// blanks, anything unparseable) is kept verbatim. Editing an entry touches
// only that line: all other lines survive byte-for-byte and line order never
// changes.
//
// # Editing
//
//	doc, err := envfile.Load(".env")
//	if err != nil {
//	    return err
//	}
//	if err := doc.Set("JWT_SECRET", secret); err != nil {
//	    return err
//	}
//	if err := doc.Save(".env"); err != nil {
//	    return err
//	}
//
// # Atomicity
//
// Save renders the document to a temporary file in the target directory and
// renames it over the destination. A failure at any point leaves the original
// file untouched.
package envfile
