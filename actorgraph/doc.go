// Package actorgraph provides the directed, weighted graph of financial actors
// that lvloan searches for lenders.
//
// The Graph G = (V, A) stores:
//
//   - a potential for every actor: the maximum amount it can lend
//     (finite, non-negative);
//   - an interest rate for every arc tail→head: the rate the tail charges
//     the head (finite, non-negative);
//   - the reverse index of arcs (incoming actors), which the backward lender
//     search walks;
//   - a cached arc count and a revision counter bumped on every mutation.
//
// Membership:
//
//   - An Actor belongs to at most one Graph at a time. The graph keeps a
//     non-owning back-reference in the actor; it is the only source of truth
//     for membership checks.
//   - Adding an actor that belongs to another graph first removes it from
//     that graph (with all its arcs).
//   - Identities must be unique within one graph: a second, distinct Actor
//     carrying an identity already present is rejected with ErrDuplicateID.
//
// Core methods:
//
//	// Actor lifecycle
//	AddActor(a *Actor[I], potential float64) error   // O(1), or O(deg) when migrating
//	RemoveActor(a *Actor[I]) error                   // O(deg(a))
//	Clear()                                          // O(V)
//
//	// Arc lifecycle
//	AddArc(from, to *Actor[I], rate float64) error   // O(1)
//	RemoveArc(from, to *Actor[I]) error              // O(1)
//
//	// Queries
//	HasArc, Incoming, Outgoing, Potential, InterestRate, Contains, Lookup, Actors
//	ActorCount(), ArcCount(), Revision()              // O(1)
//
// Errors:
//
//	ErrNilActor     – nil *Actor passed to any method
//	ErrInvalidValue – NaN, negative or infinite potential/rate
//	ErrNotInGraph   – actor is not a member of this graph
//	ErrArcNotFound  – InterestRate on a missing arc
//	ErrSelfLoop     – AddArc(a, a, …)
//	ErrDuplicateID  – another actor with the same identity is already registered
//
// Every mutator validates all inputs before touching any map, so a failed
// call leaves the graph unchanged.
//
// Thread safety:
//
//   - Graph performs no internal locking. Do not mutate a graph while a lender
//     search or a preprocessing pass runs against it; synchronize externally
//     if several goroutines share one graph.
package actorgraph
