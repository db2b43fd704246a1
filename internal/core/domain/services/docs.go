// Package services contains stateless domain services that coordinate logic
// across aggregates. The TransporterMatcher selects an eligible transporter
// for a pending parcel; the transitions it implies are committed by the
// application layer under its concurrency protocol.
package services
