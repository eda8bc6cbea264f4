// Package videoid extracts 11-character YouTube video identifiers from the
// URL shapes users paste into the frontend (watch, youtu.be, embed and
// shorts links) or from a bare identifier.
//
// Extraction is pure and never fails loudly: an unrecognized input yields
// ok == false, which callers translate into a 400 response.
package videoid
