// Package graph computes execution orders for registered work items.
//
// A Store assigns each payload a dense integer id equal to its insertion
// index. Two graph variants compose over it: Graph orders nodes by
// explicitly declared dependencies, while HazardGraph derives its
// ordering constraints from declared resource reads and writes (RAW, WAW
// and WAR hazards). Both hand their edge set to a pluggable
// toposort.Strategy and return a complete execution order, or a cycle
// failure when the declarations are contradictory.
//
// Graphs are append-only and not safe for concurrent mutation. Order
// computation never mutates the graph, so read-only calls may run
// concurrently once registration is done.
package graph
