// Package session provides the per-document editing controller.
//
// A Session owns one open document: the page store, the selection
// surface over the active page, the reflow engine, and the controlled
// value contract with the host. All per-document mutable bookkeeping,
// such as the last emitted value used for echo suppression and the
// live selection snapshot, lives on the session, so separately opened
// documents never interfere.
//
// Control flow on an edit: the mutation lands in the page store, the
// serializer emits the updated external value, then a reflow pass runs
// on the mutated page; if the pass relocates content the value is
// emitted again. An external value equal to the session's own last
// emission is suppressed as an echo; any other external value is
// authoritative and replaces the page list wholesale, reusing page
// identity positionally.
//
// Sessions are safe for concurrent use, though editing is expected to
// be single-user and single-threaded; the mutex mainly keeps the
// OnChange callback ordering coherent.
package session
