// Package ordercontext implements the order context ports: the per-session
// collection of order lines that views read and mutate, and the registry that
// hands contexts out by session id.
//
// A Context serialises its mutations and notifies subscribers once a mutation
// has been committed. Listeners run on the goroutine of the mutating call and
// after the context lock has been released, so a listener may read the
// context again.
package ordercontext
