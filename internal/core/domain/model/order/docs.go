// Package order contains the Order aggregate root and its lifecycle state
// machine.
//
// An Order is created by a customer against a restaurant's menu, moves
// through restaurant-driven preparation statuses, is picked up by a driver
// once ready, and ends in a terminal delivered or cancelled state. The
// aggregate owns its order lines (immutable price snapshots) and the
// discount bookkeeping invariant:
//
//	total_amount = pre_discount_total - discount_amount
//
// Restaurant-driven preparation statuses are deliberately loose: the kitchen
// reports whatever stage it is in and the engine does not impose an ordering
// among them (configurable via strict mode). Driver-facing transitions are
// always enforced: only a ready, unassigned order can be accepted, and only
// the assigned driver can complete it.
package order
