// Package user provides the account aggregate for the Wroom platform.
//
// The package includes:
//   - User: The aggregate root for customer, partner, restaurant and admin accounts
//   - Role: The capability class of an account
//   - Principal: The acting identity a request carries after authentication
//
// Key business rules:
//   - Every account has exactly one role, fixed at creation
//   - Blocked or deleted accounts cannot act anywhere on the platform
//   - Only restaurant accounts reference a restaurant
//   - Verification tokens expire and are purged by a background job
package user
