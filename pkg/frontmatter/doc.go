/*
Package frontmatter reads and writes the yaml header block of vault documents.

A header block opens the document with a "---" line and ends with the next "---" line.
Everything after the closing line is the body, which is never altered.

The parser is tolerant: a block that is not a valid yaml mapping, typically because a
field is declared twice, is recovered field by field rather than rejected. Headers rendered
by Serialize always parse back to the same fields and values.

A UTF-8 byte order mark in front of the header is ignored when parsing and restored by Rewrite.
*/
package frontmatter
