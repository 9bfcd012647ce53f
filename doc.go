// Package lvlath is your in-memory playground for building and matching
// general graphs — from core primitives to blossom-based weighted matching
// and Micali–Vazirani cardinality matching.
//
// 🚀 What is this module?
//
//	A modern, thread-safe library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Deterministic graph fixtures: complete/path/cycle builders
//		• General-graph matching: Edmonds/Gabow/Micali–Gabow blossom
//		  algorithms and Micali–Vazirani cardinality matching
//
// ✨ Why choose this module?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, in-code docs
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under focused subpackages:
//
//	builder/  — deterministic graph fixtures (functional options)
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matching/ — blossom algorithms (Edmonds/Gabow/Micali-Gabow) and Micali-Vazirani cardinality matching
//	pq/       — priority-queue primitives (uniform-shift, grouped, concatenable) backing matching/
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
// Dive into DESIGN.md for the grounding behind each package's choices.
//
//	go get github.com/lvlath-labs/matching
package lvlath
