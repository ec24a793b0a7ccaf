/*
Package memory gives supervisors conversation context.

# Overview

A HistoryProvider stores and retrieves the turns of one conversation
session. The Enhancer sits between the supervisor and the provider: it
prepends recent history to an incoming query and persists each completed
exchange. Memory is strictly best-effort — a missing or failing provider
degrades to the bare query and never fails a call.

Three providers ship with the package: an in-memory ring for tests and
single-process use, a Redis-backed list, and a GORM store for SQL
databases.
*/
package memory
