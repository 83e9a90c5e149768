// Package random generates cryptographically random alphanumeric
// strings for API tokens and correlation identifiers.
//
// Strings are drawn uniformly from the 62-character alphanumeric
// alphabet (A-Z, a-z, 0-9) using rejection sampling over crypto/rand,
// so no character is more likely than another.
//
//	key, err := random.String(40)   // explicit length
//	tok, err := random.Token()      // DefaultLength (30)
//	id := random.MustString(16)     // panics on entropy failure
//
// Tokens are not stored or checked by this package; callers own any
// persistence or verification.
package random
