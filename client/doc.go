// Package client implements a high-level Go client for the jotter notes
// service.
//
// It provides a thin wrapper around the service's REST API and adds:
//   - Session handling: a successful Login stores the issued bearer token in a
//     pluggable token store; Logout clears it.
//   - Transparent authorization: note calls carry the stored token via the
//     auth/transport RoundTripper, while register and login stay anonymous.
//   - A uniform error surface: unexpected replies surface as
//     *schema.StatusError, and a rejected token on a protected endpoint as
//     schema.ErrSessionExpired.
//
// Example:
//
//	cli, _ := client.New("http://localhost:8080", store.NewFileStore(path))
//	if err := cli.Login(ctx, "ada@example.com", "secret"); err != nil { ... }
//	notes, _ := cli.ListNotes(ctx)
//	fmt.Println(notes)
package client
