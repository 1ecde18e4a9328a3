// Package domain defines the core business entities of the vocabulary
// learning system: words with their definitions, per-user learning progress
// for each word, and aggregate per-user review statistics.
//
// Entities carry their own validation and are persistence-agnostic. Progress
// records are only ever advanced through the srs subpackage, which returns
// fresh copies instead of mutating in place.
package domain
