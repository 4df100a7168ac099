// Package repository contains the data access layer: parameterized SQL
// against the museum MySQL schema, decoded into the typed records defined
// in internal/model. Sentinel errors declared here let handlers map
// storage outcomes onto HTTP responses without inspecting SQL errors.
package repository

import "errors"

// ErrContentNotFound is returned when a content card lookup by id matches
// no row. Public routes translate this into a 404.
var ErrContentNotFound = errors.New("content not found")

// ErrSlotNotFound is returned when no session slot exists for the exact
// date and time a checkout selected.
var ErrSlotNotFound = errors.New("session slot not found")

// ErrCategoryNotFound is returned when a checkout references a ticket
// category id that does not exist.
var ErrCategoryNotFound = errors.New("ticket category not found")

// ErrOrderNotFound is returned when an order lookup by id or QR token
// matches no row.
var ErrOrderNotFound = errors.New("order not found")

// ErrInsufficientCapacity is returned when the conditional capacity
// update affects zero rows, i.e. another checkout claimed the remaining
// tickets first. The enclosing transaction must be rolled back.
var ErrInsufficientCapacity = errors.New("not enough tickets available")
