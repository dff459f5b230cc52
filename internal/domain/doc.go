// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/account).
// This root package holds sentinel errors, validation types, and the caller
// Identity that scopes every task operation.
package domain
