// Package tilepath finds the cheapest walk across a grid of risk levels,
// including grids expanded into many shifted copies of themselves.
//
// What is tilepath?
//
//	A small, dependency-light engine built from two pieces:
//		• tilegrid/ — parse digit rows into an immutable square grid and tile
//		  it k×k on the fly; each tile adds its distance from the origin tile
//		  to every cost, wrapping 9 back to 1.
//		• shortest/ — uniform-cost search from a start cell to an end cell,
//		  charging the cost of every cell entered (the start is free).
//
// Quick example:
//
//	g, _ := tilegrid.ParseText(input, tilegrid.WithTileFactor(5))
//	cost, _ := shortest.Solve(g, tilegrid.Cell{}, g.Corner())
//
// Under the hood:
//
//	tilegrid/       — Grid, Cell, Parse/ParseText/ParseReader, CostAt, Neighbors
//	shortest/       — Solve, Route, priority and FIFO frontiers, options
//	cmd/riskpath/   — command-line front end (YAML/.env config, zerolog)
//	internal/       — config loading and logger construction for the CLI
//
// A parsed grid never changes, so any number of searches may share it.
package tilepath
