// Package token signs and verifies the bearer tokens handed out to clients.
//
// A token is an HMAC-signed JWT carrying a fixed, minimal claim set
// ([Claims]): the user id, the raw session token, iat/exp, a per-issuance
// nonce (jti) and the issuer. Only HMAC algorithms are accepted, and the
// algorithm a [Signer] was built with is the only one it verifies.
package token
