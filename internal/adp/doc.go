// Package adp holds the Average Draft Position data model and its two
// transports: a Client that loads rows from an HTTP endpoint, and a
// Server that exposes a CSV export as that endpoint.
//
// Rows are ordered key/value maps. The first row's keys define the
// column set; key order survives JSON round trips so columns render in
// the order the server emitted them.
package adp
