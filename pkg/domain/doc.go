// Package domain contains the core domain entities of the library service.
// These types represent the business concepts (books, users and loans) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
