package core

// Test-only access to unexported internals.

// ChunkSizeForTest exposes chunkSize so tests can assert the clamp law.
var ChunkSizeForTest = chunkSize
