// Package http implements the HTTP transport of the sync server.
//
// It exposes the updates feed, the commit endpoint, single-entry lookup and
// the version endpoint. Request tracing, access logging, response
// compression and commit integrity checks are handled here before requests
// are delegated to the service layer.
package http
