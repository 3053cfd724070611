// Package order contains the Order aggregate and its satellite entities:
// Comment and HistoryEntry.
//
// An Order is a unit of installation work moving through a fixed three-state
// lifecycle (in progress, needs rework, completed). Any of the three states can
// be set at any time; there is no transition graph restricting movement between
// them. Every mutation stamps the acting user and refreshes the updated-at
// timestamp, and command handlers pair each mutation with exactly one
// HistoryEntry in the same transaction.
package order
