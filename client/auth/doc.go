// Package auth contains supporting helpers that attach bearer credentials to
// client side calls against the notes service.
//
// JSONHeaders and JSONHeadersWithAuth compute the header sets for
// unauthenticated and authenticated JSON calls. The RoundTripper in the
// `transport` sub-package applies the same headers to arbitrary HTTP traffic.
package auth
