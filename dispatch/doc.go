/*
Package dispatch invokes agents and collects their responses.

# Overview

The Coordinator runs a selected batch of agents in one of two modes.
Sequential mode gives each agent an equal slice of the shared time budget
and follows handoffs: when an agent's reply names a registered colleague,
the colleague is invoked right away and its response is inserted directly
after the originator's. Parallel mode fans the batch out under a bound and
a single shared deadline.

Timeouts are cooperative. An agent that overruns its budget keeps running
in its abandoned goroutine, but the coordinator stops waiting and records
a timeout response in its place. One agent failing, panicking, or timing
out never affects the others in the batch.
*/
package dispatch
