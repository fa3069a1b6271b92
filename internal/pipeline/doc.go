// Package pipeline fans sequence-count jobs across a worker pool and hands
// finished reports to a visit callback in input order.
//
// Ordering is part of the contract: output must not depend on thread count.
package pipeline
