/*
Package ports defines the interfaces between the easel core and its host
environment, following the Hexagonal Architecture (Ports & Adapters)
pattern.

The core (pkg/domain, pkg/ops, pkg/timeline) stays free of I/O; adapters
under pkg/adapters implement these ports for concrete backends, and
external collaborators (access control, usage metering, model clients)
plug in behind them.
*/
package ports
