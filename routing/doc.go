/*
Package routing implements skill-based agent delegation.

# Overview

routing decides which registered agents should handle a query. The decision
is driven by a Catalog: an ordered list of skill categories, each mapping a
set of keywords to candidate agent names. Keyword matching is
case-insensitive substring matching against the lower-cased query.

After category matching, collaboration rules adjust the selection for
domains that empirically benefit from more than one perspective: creative
tasks get a two-agent team, trading analysis gets the analyst and the
quantitative researcher together.

The catalog and the collaboration rules are plain data with YAML tags, so
deployments can version and tune them without code changes. DefaultCatalog
and DefaultCollaborationRules carry the built-in tables.
*/
package routing
