/*
Package types provides the shared type definitions for the robot-brain
delegation engine.

# Overview

types is the lowest-level package with no internal dependencies, so the
contracts shared by every layer of the engine live here: the Agent
invocation interface, the per-invocation AgentResponse, the per-call
SupervisorResult, supervisor configuration, and structured error codes.

# Core model

  - Agent: a named responder to natural-language queries. Its Reply may
    request a handoff to another named agent.
  - AgentResponse: the outcome of one agent invocation, success or failure.
  - SupervisorResult: the aggregated outcome of one supervisor call, with a
    terminal Status, index-aligned responses/agents, handoff events and an
    optional discussion transcript.
  - SupervisorConfig: immutable supervisor configuration, validated at
    construction time.

# Adapters

Agents come in two shapes: plain text responders and responders that can
signal a handoff. Both are normalized through a single interface; use
AgentFunc for the former and ReplyAgentFunc for the latter instead of
branching on call shapes at invocation sites.
*/
package types
