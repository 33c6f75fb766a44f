// Package services contains the business layer between the HTTP handlers
// and the dataset store. Services validate request semantics (unknown
// leagues and teams), compose the pure aggregation functions from the stats
// package, and own the reload/broadcast flow.
package services
