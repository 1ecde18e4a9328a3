// Package service provides application-level services orchestrating domain
// logic and persistence. Word management lives here; the review workflow has
// its own subpackage.
package service
