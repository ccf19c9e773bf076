// Package model defines the result types shared by the cracking engine
// and the report writers. Results are plain values constructed per
// attempt; nothing in this package carries state across invocations.
package model
