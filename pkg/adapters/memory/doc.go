/*
Package memory provides deterministic in-memory stand-ins for the three
store capabilities (MemoryStore, RetrievalStore, GraphStore).

They perform no I/O and are selected automatically when no backend URL is
configured, which makes them the default for local development and tests.
All stand-ins are safe for concurrent use by independent runs.
*/
package memory
