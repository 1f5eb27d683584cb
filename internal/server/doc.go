// package server contains the OAuth loopback collaborator: a local callback
// listener that turns a browser authorization into a usable token. The core
// engines never touch it; they receive an already-authorized client.
package server
