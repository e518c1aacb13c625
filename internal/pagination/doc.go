// Package pagination computes bounded windows over larger read-only
// collections.
//
// Page and Hyper slice an ordered Sequence by page number. PageByIndex walks
// an Indexed collection whose positions may have gaps left by deleted items,
// so that a client resuming from NextIndex never skips or repeats an item
// when rows disappear between two requests.
package pagination
