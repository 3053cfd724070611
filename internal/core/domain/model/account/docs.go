// Package account contains the User aggregate and its session Token entity.
//
// A User authenticates with a username and a one-way password hash and carries
// exactly one Role that governs which operations the access policy allows.
// Session tokens are opaque random strings bound to a user; a user may hold any
// number of live tokens and tokens never expire or get revoked.
package account
