// Package scan discovers the process_ folders directly under a target
// directory. Output is always a sorted, duplicate-free name list; a
// missing or unreadable target reads as "no matches", never as an error.
package scan
