// Package jotter provides high-level helpers for working with the Jotter notes service.
//
// The package glues the wire types defined in the schema package with the HTTP
// client, token persistence and the server implementation. In practice it is
// used as an umbrella package that exposes two primary entry-points:
//  1. NewClient, which returns a fully configured notes client, and
//  2. NewServer, which returns a fully configured notes server.
//
// Both constructors accept option structures that can be populated from CLI
// flags or configuration files, making it straightforward to spin up a client
// with a persistent session or a server backed by SQLite.
//
// Example:
//
//	srv, _ := jotter.NewServer(&jotter.ServerOptions{Addr: ":8080"})
//	cli, _ := jotter.NewClient(&jotter.ClientOptions{BaseURL: "http://localhost:8080"})
package jotter
