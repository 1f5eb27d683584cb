// package services implements the authenticated HTTP façade over the
// Spotify Web API: client-credentials token exchange and bearer-authorized
// GET/POST operations with typed response structs per endpoint.
package services
