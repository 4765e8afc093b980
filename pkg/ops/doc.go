/*
Package ops implements the mutation operation catalog for easel projects.

Every operation is a named tool with a declared input shape, registered in
a Catalog shared verbatim by both invocation boundaries: the interactive
chat loop and the stateless MCP/HTTP path. Sharing the command table is
what guarantees identical mutation semantics across boundaries.

Operations are all-or-nothing: Apply hands the handler a deep clone of the
document, and a failed operation returns the original document untouched
alongside a structured Result. Handlers never panic past the Apply
boundary and never raise for user-correctable input — the model sees the
error string and may retry with corrected arguments.
*/
package ops
