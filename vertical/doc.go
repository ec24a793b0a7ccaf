/*
Package vertical specializes supervisors for business domains.

# Overview

A vertical supervisor wraps a plain supervisor and post-processes its
results into domain-shaped analysis. The wrapping is pure annotation:
agents run exactly as they would under the inner supervisor, and the
call's status is never changed.

Two verticals ship with the package: trading (sentiment and technical
scanning over the agents' prose, stock analysis with a BUY/HOLD
recommendation) and payroll (per-employee gross pay with overtime at
time and a half).
*/
package vertical
