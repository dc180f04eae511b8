// Package services provides the domain services of the matching engine:
// pure, stateless computations that span multiple domain objects and don't
// naturally belong to a single aggregate.
//
// The package includes:
//   - ConflictDetector: Pairwise interval-overlap detection between two schedules
//   - WorkloadValidator: Aggregate-hours and commitment checks against worker constraints
//   - PairClassifier: Descriptive classification of compatible schedule pairs
//   - PairMatcher: Enumeration, filtering, and ranking of candidate job pairs
//   - SingleEvaluator: The degenerate one-job evaluation sharing the same checks
//
// Every service is deterministic: given identical inputs it returns identical
// outputs, owns no mutable state, and never mutates its inputs.
package services
