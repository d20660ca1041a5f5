/*
Package domain contains the core types shared by the Daneel engine and its adapters.

The central type is State: the single mutable record threaded through every
step of an assistant run. Nodes append to or overwrite the fields they own;
nothing here is shared across runs. Supporting types (Chunk, ToolCall,
ToolOutcome, Entry) describe the data exchanged with the capability clients
defined in pkg/ports.
*/
package domain
