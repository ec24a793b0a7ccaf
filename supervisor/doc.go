/*
Package supervisor coordinates teams of agents.

# Overview

A Supervisor owns a fixed set of registered agents, a skill-based
selector, and a dispatch coordinator. Execute takes a query end to end:
enhance it with conversation memory, pick the agents, dispatch them
sequentially or in parallel, fold their responses, and classify the
outcome as success, partial_success, or failure. Execute never returns an
error; every operational failure is folded into the result.

# Core model

Agent failures are data, not control flow. A timed-out or crashed agent
contributes an error entry and lowers the status, but never aborts the
call or its siblings. Status aggregation counts the selected agents: all
answered means success, anything salvaged (one answer, or a timeout that
explains the misses) means partial_success, and nothing at all means
failure.

ExecuteDiscussion runs a round-robin multi-agent discussion on a topic,
feeding each speaker the tail of the conversation so far.
*/
package supervisor
