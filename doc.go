// Package pathlab is a compact toolkit for single-source shortest paths:
// build a weighted graph, run two classical algorithms on it, and compare
// their answers and running time on the same input.
//
// 🚀 What is pathlab?
//
//	A small, focused library that brings together:
//		• Core primitives: dense integer vertices, weighted directed or
//		  undirected adjacency lists, cloning, resizing, a text codec
//		• A generic min-priority queue with an inspectable ordering
//		• Shortest paths: Dijkstra (lazy decrease-key) and Bellman–Ford
//		  with negative-cycle detection
//		• Path reconstruction from predecessor arrays
//		• A benchmark harness that times both algorithms, cross-validates
//		  their distance vectors and emits CSV-ready records
//
// Everything is organized under five subpackages:
//
//	core/     — Graph, Vertex, Edge types and the text round-trip codec
//	pqueue/   — generic slice-backed min-heap priority queue
//	shortest/ — Dijkstra, Bellman–Ford, RestorePath
//	builder/  — random (Erdős–Rényi style) graph generation
//	bench/    — comparator: timing, cross-validation, benchmark records
//
// Quick ASCII example:
//
//	    0──2──1
//	    │     │
//	    5     1
//	    │     │
//	    └──── 2 ──1── 3 ──3── 4
//
//	a 5-vertex directed graph where both algorithms agree that the
//	cheapest route 0→4 is 0→1→2→3→4 with total cost 7.
//
// The library is single-threaded by design: a Graph may be shared across
// goroutines only while nothing mutates it, and callers wrapping pathlab in
// a concurrent host must serialize mutation against reads themselves.
//
//	go get github.com/katalvlaran/pathlab
package pathlab
