// Package hrx reads and writes human readable archives: plain text
// documents that pack any number of files and directories, each with an
// optional comment, between boundary marker lines like `<===>`.
//
// [Parse] turns a document into an [Archive] holding ordered [Entries],
// and [Archive.Serialize] writes it back out byte for byte. The boundary
// length is discovered from the first marker of the input and fixed for
// the whole document; it can be changed later with
// [Archive.SetBoundaryLength], which refuses lengths whose boundary
// already occurs in a comment or body.
//
// A small archive with two files looks like this:
//
//	<===> input.scss
//	ul {
//	  margin-left: 1em;
//	}
//
//	<===> output.css
//	ul li {
//	  list-style-type: none;
//	}
package hrx
