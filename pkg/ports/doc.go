/*
Package ports defines the driven ports (interfaces) for the Daneel engine.

These interfaces decouple the orchestration core from the concrete memory,
retrieval, graph and tool backends. The engine is polymorphic over the
capability set: whichever implementation is injected at construction time
(in-memory stand-in, HTTP client, Redis) must behave identically from the
engine's point of view.

# Key Interfaces

  - MemoryStore: durable per-user memory (Memobase or a stand-in).
  - RetrievalStore: vector/chunk search (RAGdoll or a stand-in).
  - GraphStore: knowledge-graph retrieval (Graph RAG or a stand-in).
  - ToolInvoker: named side-effect execution (task creation, email, ...).
*/
package ports
