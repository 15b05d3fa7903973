// Package domain contains shared domain types used across entity sub-packages.
// The list model and its transitions live in domain/lists; the board reducer
// that drives a move session lives in domain/board. This root package holds
// sentinel errors and validation types shared by every layer.
package domain
