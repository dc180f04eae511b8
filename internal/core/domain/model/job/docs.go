// Package job contains the Job entity: a normalized, immutable job offer with
// a validated hourly rate, weekly workload, and weekly time schedule.
//
// Jobs are produced by the caller (listing feeds, pasted postings) and are
// never mutated by the matching engine; weekly pay is always derived from
// rate and hours rather than stored.
package job
