// Package naming provides the name flattening shared by the case, boundary
// and pattern lookups.
//
// Names are matched by key rather than by exact spelling, so a user can write
// "UpperSnake", "upper_snake", "upper-snake" or "upper snake" and reach the
// same case. Key lowercases letters and drops separator characters.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
