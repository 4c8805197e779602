// Package server provides the reference implementation of the jotter notes
// service.
//
// It exposes the JSON REST contract the client package consumes:
//   - POST /register and /login issuing HS256 bearer tokens
//   - bearer-guarded note CRUD under /notes, scoped to the owning account
//   - pluggable persistence with sqlite and in-memory stores
//
// Callers typically construct a server via `server.New` and expose it over
// HTTP:
//
//	s, _ := server.New(server.WithConfig(config))
//	log.Fatal(s.HTTP(ctx, ":8080").ListenAndServe())
package server
