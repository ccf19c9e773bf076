// Package corpus loads reference language corpora as frequency tables.
// Corpora are streamed line by line, never fully materialized, and the
// accumulated character counts can be cached in a SQLite store keyed by
// the corpus file's SHA3-256 digest so that repeated runs skip
// re-reading multi-megabyte text files.
package corpus
