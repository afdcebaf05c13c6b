// Package utils holds small conversion helpers shared by the API clients.
package utils
