package models

// TokenResponse is returned by the signup and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// HelloResponse is returned by the hello endpoint and echoes the caller's
// decrypted email.
type HelloResponse struct {
	Hello string `json:"hello"`
}

// AppBuildInfo describes the binary that is running.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}
