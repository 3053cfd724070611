// Package installer contains the Installer aggregate: a worker profile that
// can be assigned to orders. An installer optionally links back to a user
// account (at most one installer per user), which is how "my orders" lookups
// resolve an authenticated identity to assigned work.
package installer
