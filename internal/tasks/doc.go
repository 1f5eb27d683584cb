// package tasks implements the playlist/track engines: pagination of a
// playlist's track collection, earliest-album search, batch CSV enrichment,
// and chunked playlist writing.
//
// All remote calls are strictly sequential with explicit pacing between
// them; nothing here fans out requests in parallel. Long-running operations
// emit progress updates via channels for non-blocking status reporting to
// the CLI layer.
package tasks
