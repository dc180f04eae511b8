// Package match contains the read models produced by the matching engine:
// pair results, single-job matches, workload reports, and conflict details.
//
// Everything in this package is a value object computed fresh per request.
// Nothing is persisted and nothing holds references to mutable state.
package match
