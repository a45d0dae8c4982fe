/*
Package vaultmon keeps the metadata of a notes vault consistent.

Notes declare the program, course and class they belong to in their frontmatter.
Vaultmon resolves this hierarchy from index notes found in parent directories, or from
the location of notes, and rewrites the frontmatter of notes which disagree.

The command line tool is located in cmd/vaultmon. Reusable packages are under pkg:
  - pkg/frontmatter parses and renders frontmatter headers
  - pkg/hierarchy resolves the hierarchy of a note
  - pkg/reconcile updates notes, one at a time or over a whole vault
*/
package vaultmon
