// internal/version/version.go
package version

// Version is stamped by the release build via
// -ldflags "-X nuccount/internal/version.Version=vX.Y.Z".
var Version = "dev"
