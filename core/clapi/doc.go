// Package clapi is the client for the content attribute service, which maps a
// media filename to the course (and sometimes the segment) it was recorded for.
package clapi
