// Package server holds configuration for the HTTP gateway surface.
package server
