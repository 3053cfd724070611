// Package services provides domain services that implement business rules
// spanning multiple aggregates in the work-order system.
//
// The package includes:
//   - AccessPolicy: A domain service mapping each operation to the set of roles
//     allowed to perform it
//
// The access policy is the single authority on role requirements. Command and
// query handlers perform no role checks of their own; the HTTP adapter consults
// the policy after resolving the caller's identity and before invoking a handler.
package services
