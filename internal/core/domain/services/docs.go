// Package services contains stateless domain services that implement business
// rules spanning aggregates.
//
// AccessPolicy centralizes the ownership and capability checks for order
// access: which principal may transition or read which order. Route handlers
// and command handlers consume it instead of comparing party IDs inline,
// keeping authorization decisions in one testable place.
package services
