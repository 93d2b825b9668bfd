// Package lexicon holds the read-only keyword tables and text templates used
// to classify hackathons and render their briefings.
//
// Every table is an ordered slice or a map that is never written after
// package initialisation, so concurrent readers need no locking. Scan order
// is significant: the first matching domain or stage rule wins.
package lexicon
